package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ecodeli/internal/delivery/http/response"
	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler serves daily route planning for deliverers.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// PlanRouteRequest is the body of POST /deliverer/routes/plan.
type PlanRouteRequest struct {
	Date     string           `json:"date,omitempty"` // YYYY-MM-DD, today when empty
	Start    *LocationRequest `json:"start,omitempty"`
	DepartAt *time.Time       `json:"depart_at,omitempty"`
}

// PlannedRouteResponse is a stored route with the stops left out of it.
type PlannedRouteResponse struct {
	*entity.Route
	Violations []matching.StopViolation `json:"violations"`
}

// PlanRoute plans and stores the calling deliverer's route for a day.
func (h *RouteHandler) PlanRoute(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	var req PlanRouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return err
	}

	input := &usecase.PlanRouteInput{
		Date:  date,
		Start: req.Start.toEntity(),
	}
	if req.DepartAt != nil {
		input.DepartAt = *req.DepartAt
	}

	planned, err := h.routeUC.PlanRoute(c.Request().Context(), delivererID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, PlannedRouteResponse{
		Route:      planned.Route,
		Violations: nonNil(planned.Violations),
	}, "Route planned successfully")
}

// GetRoute returns the calling deliverer's stored route for ?date= (today by default).
func (h *RouteHandler) GetRoute(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	date, err := parseDate("date", c.QueryParam("date"))
	if err != nil {
		return err
	}

	route, err := h.routeUC.GetRoute(c.Request().Context(), delivererID, date)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, route, "Route retrieved successfully")
}
