package impl

import (
	"context"
	"time"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
)

type matchingService struct {
	announcementRepo repository.AnnouncementRepository
	delivererRepo    repository.DelivererRepository
	applicationRepo  repository.ApplicationRepository
	weights          matching.Weights
	matchingCfg      config.MatchingConfig
	routingCfg       config.RoutingConfig
	now              func() time.Time
}

// NewMatchingService creates a new matching service instance.
// It fails when the configured score weights are out of range.
func NewMatchingService(
	announcementRepo repository.AnnouncementRepository,
	delivererRepo repository.DelivererRepository,
	applicationRepo repository.ApplicationRepository,
	cfg *config.Config,
) (usecase.MatchingUsecase, error) {
	cfg.ApplyDefaults()

	weights := matching.Weights{
		Distance: cfg.Matching.Weights.Distance,
		Price:    cfg.Matching.Weights.Price,
		Rating:   cfg.Matching.Weights.Rating,
		Capacity: cfg.Matching.Weights.Capacity,
	}
	if err := weights.Validate(); err != nil {
		return nil, toAppError(err, "invalid matching weights")
	}

	return &matchingService{
		announcementRepo: announcementRepo,
		delivererRepo:    delivererRepo,
		applicationRepo:  applicationRepo,
		weights:          weights,
		matchingCfg:      *cfg.Matching,
		routingCfg:       *cfg.Routing,
		now:              time.Now,
	}, nil
}

// FindAnnouncementsForDeliverer filters and ranks published announcements around the deliverer.
func (s *matchingService) FindAnnouncementsForDeliverer(ctx context.Context, delivererID uuid.UUID, input *usecase.MatchAnnouncementsInput) (*usecase.AnnouncementMatches, error) {
	deliverer, err := s.findDispatchableDeliverer(ctx, delivererID)
	if err != nil {
		return nil, err
	}

	constraints := matching.Constraints{
		MaxDistanceKm: input.MaxDistanceKm,
		MinPrice:      input.MinPrice,
		MaxPrice:      input.MaxPrice,
		DeliveryTypes: input.DeliveryTypes,
		Urgency:       input.Urgency,
		PickupFrom:    input.PickupFrom,
		PickupTo:      input.PickupTo,
	}
	if constraints.MaxDistanceKm == 0 {
		constraints.MaxDistanceKm = s.matchingCfg.MaxDistanceKm
	}
	if err := constraints.Validate(); err != nil {
		return nil, toAppError(err, "invalid match criteria")
	}

	radius := constraints.Radius()
	area := matching.BoundAround(*deliverer.Location, radius)
	announcements, err := s.announcementRepo.FindPublished(ctx, repository.AnnouncementCriteria{
		Area:          &area,
		DeliveryTypes: constraints.DeliveryTypes,
		Urgency:       constraints.Urgency,
		PickupFrom:    constraints.PickupFrom,
		PickupTo:      constraints.PickupTo,
	})
	if err != nil {
		return nil, toAppError(err, "failed to load published announcements")
	}

	appliedIDs, err := s.applicationRepo.FindActiveAnnouncementIDs(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to load existing applications")
	}
	constraints.Excluded = make(map[uuid.UUID]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		constraints.Excluded[id] = struct{}{}
	}

	candidates, err := matching.FilterCandidates(deliverer, announcements, constraints)
	if err != nil {
		return nil, toAppError(err, "failed to filter announcements")
	}

	ranked, err := matching.ScoreAndRank(candidates, s.weights, radius)
	if err != nil {
		return nil, toAppError(err, "failed to rank announcements")
	}

	return &usecase.AnnouncementMatches{
		Matches:       truncate(ranked, limitOrDefault(input.Limit, s.matchingCfg.MaxResults)),
		Total:         len(ranked),
		RadiusKm:      radius,
		LocationStale: deliverer.IsLocationStale(s.now(), s.matchingCfg.LocationMaxAge),
	}, nil
}

// FindDeliverersForAnnouncement ranks approved deliverers near the pickup point.
func (s *matchingService) FindDeliverersForAnnouncement(ctx context.Context, clientID, announcementID uuid.UUID) (*usecase.DelivererMatches, error) {
	announcement, err := s.announcementRepo.FindByID(ctx, announcementID)
	if err != nil {
		return nil, toAppError(err, "failed to find announcement")
	}
	if announcement.ClientID != clientID {
		return nil, domainerrors.ErrAnnouncementOwnershipViolation
	}
	if !announcement.IsOpen() {
		return nil, domainerrors.ErrAnnouncementNotOpen
	}

	constraints := matching.Constraints{
		MaxDistanceKm: s.matchingCfg.MaxDistanceKm,
		MinRating:     s.matchingCfg.MinDelivererRating,
	}
	radius := constraints.Radius()
	area := matching.BoundAround(announcement.Pickup, radius)

	deliverers, err := s.delivererRepo.FindApproved(ctx, repository.DelivererCriteria{
		Area:      &area,
		MinRating: constraints.MinRating,
	})
	if err != nil {
		return nil, toAppError(err, "failed to load deliverers")
	}

	candidates, err := matching.FilterDeliverers(announcement, deliverers, constraints)
	if err != nil {
		return nil, toAppError(err, "failed to filter deliverers")
	}

	ranked, err := matching.ScoreAndRank(candidates, s.weights, radius)
	if err != nil {
		return nil, toAppError(err, "failed to rank deliverers")
	}

	return &usecase.DelivererMatches{
		Announcement: announcement,
		Matches:      truncate(ranked, s.matchingCfg.DelivererMatchLimit),
		Total:        len(ranked),
	}, nil
}

// ComposeRoute sequences an ad-hoc stop list for the deliverer.
func (s *matchingService) ComposeRoute(ctx context.Context, delivererID uuid.UUID, input *usecase.ComposeRouteInput) (*matching.ComposedRoute, error) {
	start := input.Start
	if start == nil {
		deliverer, err := s.delivererRepo.FindByID(ctx, delivererID)
		if err != nil {
			return nil, toAppError(err, "failed to find deliverer")
		}
		if !deliverer.HasLocation() {
			return nil, domainerrors.ErrDelivererLocationUnknown
		}
		start = deliverer.Location
	}

	composed, err := matching.ComposeRoute(input.Stops, *start, routeOptions(s.routingCfg, input.DepartAt))
	if err != nil {
		return nil, toAppError(err, "failed to compose route")
	}

	return composed, nil
}

// findDispatchableDeliverer loads a deliverer that may receive announcements.
func (s *matchingService) findDispatchableDeliverer(ctx context.Context, delivererID uuid.UUID) (*entity.Deliverer, error) {
	deliverer, err := s.delivererRepo.FindByID(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to find deliverer")
	}
	if !deliverer.IsApproved() {
		return nil, domainerrors.ErrDelivererNotApproved
	}
	if !deliverer.HasLocation() {
		return nil, domainerrors.ErrDelivererLocationUnknown
	}

	return deliverer, nil
}

func routeOptions(cfg config.RoutingConfig, departAt time.Time) matching.RouteOptions {
	return matching.RouteOptions{
		DeadlineToleranceKm: cfg.DeadlineToleranceKm,
		AverageSpeedKmh:     cfg.AverageSpeedKmh,
		ServiceTime:         cfg.ServiceTime,
		DepartAt:            departAt,
	}
}

func limitOrDefault(requested, configured int) int {
	if requested <= 0 || requested > configured {
		return configured
	}

	return requested
}

func truncate(ranked []matching.ScoredCandidate, limit int) []matching.ScoredCandidate {
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}

	return ranked
}
