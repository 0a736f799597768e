package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ecodeli/internal/delivery/http/response"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchingHandlerParams holds dependencies for MatchingHandler, injected by Fx.
type MatchingHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// MatchingHandler serves announcement and deliverer matching plus ad-hoc route composition.
type MatchingHandler struct {
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler
func NewMatchingHandler(params MatchingHandlerParams) *MatchingHandler {
	return &MatchingHandler{
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// ScoredMatchResponse is one ranked candidate.
type ScoredMatchResponse struct {
	DistanceKm             float64                      `json:"distance_km"`
	Score                  float64                      `json:"score"`
	SubScores              matching.SubScores           `json:"sub_scores"`
	Level                  matching.RecommendationLevel `json:"recommendation_level"`
	EstimatedTravelMinutes float64                      `json:"estimated_travel_minutes"`
}

// AnnouncementMatchResponse is an announcement proposed to a deliverer.
type AnnouncementMatchResponse struct {
	Announcement *entity.Announcement `json:"announcement"`
	ScoredMatchResponse
}

// AnnouncementMatchesResponse is the body of GET /deliverer/matches.
type AnnouncementMatchesResponse struct {
	Matches       []AnnouncementMatchResponse `json:"matches"`
	Total         int                         `json:"total"`
	RadiusKm      float64                     `json:"radius_km"`
	LocationStale bool                        `json:"location_stale"`
}

// DelivererMatchResponse is a deliverer proposed to a client.
type DelivererMatchResponse struct {
	DelivererID         uuid.UUID      `json:"deliverer_id"`
	Rating              float64        `json:"rating"`
	CompletedDeliveries int            `json:"completed_deliveries"`
	Vehicle             entity.Vehicle `json:"vehicle"`
	ScoredMatchResponse
}

// DelivererMatchesResponse is the body of GET /client/announcements/:id/matches.
type DelivererMatchesResponse struct {
	AnnouncementID uuid.UUID                `json:"announcement_id"`
	Matches        []DelivererMatchResponse `json:"matches"`
	Total          int                      `json:"total"`
}

// StopRequest is one stop of an ad-hoc route.
type StopRequest struct {
	AnnouncementID uuid.UUID  `json:"announcement_id" validate:"required"`
	Kind           string     `json:"kind" validate:"required,stop_kind"`
	Latitude       float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64    `json:"longitude" validate:"min=-180,max=180"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// ComposeRouteRequest is the body of POST /deliverer/routes/compose.
type ComposeRouteRequest struct {
	Start    *LocationRequest `json:"start,omitempty"`
	DepartAt *time.Time       `json:"depart_at,omitempty"`
	Stops    []StopRequest    `json:"stops" validate:"required,min=1,max=100,dive"`
}

// ComposedRouteResponse is an ordered ad-hoc route.
type ComposedRouteResponse struct {
	Stops            []entity.Stop            `json:"stops"`
	Violations       []matching.StopViolation `json:"violations"`
	TotalDistanceKm  float64                  `json:"total_distance_km"`
	TotalDurationMin float64                  `json:"total_duration_min"`
}

// FindAnnouncements ranks published announcements around the calling deliverer.
func (h *MatchingHandler) FindAnnouncements(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	input, err := parseMatchQuery(c)
	if err != nil {
		return err
	}

	result, err := h.matchingUC.FindAnnouncementsForDeliverer(c.Request().Context(), delivererID, input)
	if err != nil {
		return err
	}

	body := AnnouncementMatchesResponse{
		Matches:       make([]AnnouncementMatchResponse, 0, len(result.Matches)),
		Total:         result.Total,
		RadiusKm:      result.RadiusKm,
		LocationStale: result.LocationStale,
	}
	for _, m := range result.Matches {
		body.Matches = append(body.Matches, AnnouncementMatchResponse{
			Announcement:        m.Announcement,
			ScoredMatchResponse: scored(m),
		})
	}

	return response.Success(c, http.StatusOK, body, "Announcements matched successfully")
}

// FindDeliverers ranks deliverers for one of the calling client's announcements.
func (h *MatchingHandler) FindDeliverers(c echo.Context) error {
	clientID, err := callerID(c)
	if err != nil {
		return err
	}
	announcementID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.matchingUC.FindDeliverersForAnnouncement(c.Request().Context(), clientID, announcementID)
	if err != nil {
		return err
	}

	body := DelivererMatchesResponse{
		AnnouncementID: announcementID,
		Matches:        make([]DelivererMatchResponse, 0, len(result.Matches)),
		Total:          result.Total,
	}
	for _, m := range result.Matches {
		body.Matches = append(body.Matches, DelivererMatchResponse{
			DelivererID:         m.Deliverer.ID,
			Rating:              m.Deliverer.Rating,
			CompletedDeliveries: m.Deliverer.CompletedDeliveries,
			Vehicle:             m.Deliverer.Vehicle,
			ScoredMatchResponse: scored(m),
		})
	}

	return response.Success(c, http.StatusOK, body, "Deliverers matched successfully")
}

// ComposeRoute orders an ad-hoc stop list without storing it.
func (h *MatchingHandler) ComposeRoute(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ComposeRouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.ComposeRouteInput{
		Start: req.Start.toEntity(),
		Stops: make([]entity.Stop, 0, len(req.Stops)),
	}
	if req.DepartAt != nil {
		input.DepartAt = *req.DepartAt
	}
	for _, s := range req.Stops {
		input.Stops = append(input.Stops, entity.Stop{
			AnnouncementID: s.AnnouncementID,
			Kind:           entity.StopKind(s.Kind),
			Location:       entity.NewLocation(s.Latitude, s.Longitude),
			Deadline:       s.Deadline,
		})
	}

	composed, err := h.matchingUC.ComposeRoute(c.Request().Context(), delivererID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ComposedRouteResponse{
		Stops:            composed.Stops,
		Violations:       nonNil(composed.Violations),
		TotalDistanceKm:  composed.TotalDistanceKm,
		TotalDurationMin: composed.TotalDurationMin,
	}, "Route composed successfully")
}

// parseMatchQuery reads the deliverer's search criteria from the query string.
func parseMatchQuery(c echo.Context) (*usecase.MatchAnnouncementsInput, error) {
	var (
		input              usecase.MatchAnnouncementsInput
		minPrice, maxPrice float64
		types              []string
		urgency            string
	)

	err := echo.QueryParamsBinder(c).
		Float64("max_distance_km", &input.MaxDistanceKm).
		Float64("min_price", &minPrice).
		Float64("max_price", &maxPrice).
		Strings("delivery_type", &types).
		String("urgency", &urgency).
		Time("pickup_from", &input.PickupFrom, time.RFC3339).
		Time("pickup_to", &input.PickupTo, time.RFC3339).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if c.QueryParam("min_price") != "" {
		input.MinPrice = &minPrice
	}
	if c.QueryParam("max_price") != "" {
		input.MaxPrice = &maxPrice
	}
	if input.Limit < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit must not be negative")
	}

	for _, raw := range types {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				input.DeliveryTypes = append(input.DeliveryTypes, entity.DeliveryType(t))
			}
		}
	}
	if urgency != "" {
		input.Urgency = entity.Urgency(urgency)
		if !input.Urgency.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown urgency " + urgency)
		}
	}

	return &input, nil
}

func scored(m matching.ScoredCandidate) ScoredMatchResponse {
	return ScoredMatchResponse{
		DistanceKm:             m.DistanceKm,
		Score:                  m.Score,
		SubScores:              m.SubScores,
		Level:                  m.Level,
		EstimatedTravelMinutes: m.EstimatedTravelMinutes,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
