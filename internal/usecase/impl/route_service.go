package impl

import (
	"context"
	"log/slog"
	"time"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
)

type routeService struct {
	delivererRepo    repository.DelivererRepository
	applicationRepo  repository.ApplicationRepository
	announcementRepo repository.AnnouncementRepository
	routeRepo        repository.RouteRepository
	publisher        service.EventPublisher
	routingCfg       config.RoutingConfig
	logger           *slog.Logger
	now              func() time.Time
}

// NewRouteService creates a new route planning service instance
func NewRouteService(
	delivererRepo repository.DelivererRepository,
	applicationRepo repository.ApplicationRepository,
	announcementRepo repository.AnnouncementRepository,
	routeRepo repository.RouteRepository,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RouteUsecase {
	cfg.ApplyDefaults()

	return &routeService{
		delivererRepo:    delivererRepo,
		applicationRepo:  applicationRepo,
		announcementRepo: announcementRepo,
		routeRepo:        routeRepo,
		publisher:        publisher,
		routingCfg:       *cfg.Routing,
		logger:           logger,
		now:              time.Now,
	}
}

// PlanRoute sequences the deliverer's matched announcements for a day and stores the route.
func (s *routeService) PlanRoute(ctx context.Context, delivererID uuid.UUID, input *usecase.PlanRouteInput) (*usecase.PlannedRoute, error) {
	deliverer, err := s.delivererRepo.FindByID(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to find deliverer")
	}

	start := input.Start
	if start == nil {
		if !deliverer.HasLocation() {
			return nil, domainerrors.ErrDelivererLocationUnknown
		}
		start = deliverer.Location
	}

	day := input.Date
	if day.IsZero() {
		day = s.now()
	}
	day = entity.PlanningDay(day)

	stops, err := s.stopsForDay(ctx, delivererID, day)
	if err != nil {
		return nil, err
	}

	composed, err := matching.ComposeRoute(stops, *start, routeOptions(s.routingCfg, input.DepartAt))
	if err != nil {
		return nil, toAppError(err, "failed to compose route")
	}

	route := &entity.Route{
		DelivererID:      delivererID,
		PlanningDate:     day,
		Start:            *start,
		Stops:            composed.Stops,
		TotalDistanceKm:  composed.TotalDistanceKm,
		TotalDurationMin: composed.TotalDurationMin,
	}
	if err := s.routeRepo.Save(ctx, route); err != nil {
		return nil, toAppError(err, "failed to save route")
	}

	publishEvent(ctx, s.publisher, s.logger, &service.MatchEvent{
		Type:        service.MatchEventRoutePlanned,
		RouteID:     route.ID.String(),
		DelivererID: delivererID.String(),
	})

	return &usecase.PlannedRoute{
		Route:      route,
		Violations: composed.Violations,
	}, nil
}

// GetRoute returns the route stored for the deliverer and day.
func (s *routeService) GetRoute(ctx context.Context, delivererID uuid.UUID, date time.Time) (*entity.Route, error) {
	if date.IsZero() {
		date = s.now()
	}

	route, err := s.routeRepo.FindByDelivererAndDate(ctx, delivererID, entity.PlanningDay(date))
	if err != nil {
		return nil, toAppError(err, "failed to find route")
	}

	return route, nil
}

// stopsForDay builds pickup and drop-off stops for the matched announcements
// the deliverer was accepted on whose pickup is on day or flexible.
func (s *routeService) stopsForDay(ctx context.Context, delivererID uuid.UUID, day time.Time) ([]entity.Stop, error) {
	accepted, err := s.applicationRepo.FindAcceptedByDeliverer(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to load accepted applications")
	}
	if len(accepted) == 0 {
		return []entity.Stop{}, nil
	}

	ids := make([]uuid.UUID, 0, len(accepted))
	for _, a := range accepted {
		ids = append(ids, a.AnnouncementID)
	}

	announcements, err := s.announcementRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, toAppError(err, "failed to load matched announcements")
	}

	stops := make([]entity.Stop, 0, 2*len(announcements))
	for _, a := range announcements {
		if a.Status != entity.AnnouncementStatusMatched {
			continue
		}
		if pickup := a.PickupDate(); !pickup.IsZero() && !entity.PlanningDay(pickup).Equal(day) {
			continue
		}

		stops = append(stops,
			entity.Stop{
				AnnouncementID: a.ID,
				Kind:           entity.StopKindPickup,
				Location:       a.Pickup,
				Deadline:       optionalTime(a.PickupWindow.End),
			},
			entity.Stop{
				AnnouncementID: a.ID,
				Kind:           entity.StopKindDropoff,
				Location:       a.Delivery,
				Deadline:       optionalTime(a.DeliveryDeadline()),
			},
		)
	}

	return stops, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
