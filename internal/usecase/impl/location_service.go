package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/matching"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
)

const maxAvailabilityWindows = 50

type locationService struct {
	delivererRepo repository.DelivererRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewLocationService creates a new deliverer location service instance
func NewLocationService(delivererRepo repository.DelivererRepository, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		delivererRepo: delivererRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// UpdateLocation validates and stores the reported position, stamped with the server clock.
func (s *locationService) UpdateLocation(ctx context.Context, delivererID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Deliverer, error) {
	loc := entity.NewLocation(input.Latitude, input.Longitude)
	if err := matching.ValidateLocation("location", loc); err != nil {
		return nil, toAppError(err, "invalid location")
	}

	if err := s.delivererRepo.UpdateLocation(ctx, delivererID, loc, s.now().UTC()); err != nil {
		return nil, toAppError(err, "failed to update deliverer location")
	}

	return s.reload(ctx, delivererID)
}

// UpdateAvailability validates the windows and replaces the stored ones, ordered by start.
func (s *locationService) UpdateAvailability(ctx context.Context, delivererID uuid.UUID, input *usecase.UpdateAvailabilityInput) (*entity.Deliverer, error) {
	windows, err := normalizeAvailability(input.Windows)
	if err != nil {
		return nil, err
	}

	if err := s.delivererRepo.UpdateAvailability(ctx, delivererID, windows); err != nil {
		return nil, toAppError(err, "failed to update deliverer availability")
	}

	s.logger.InfoContext(ctx, "Deliverer availability updated",
		slog.String("deliverer_id", delivererID.String()),
		slog.Int("windows", len(windows)),
	)

	return s.reload(ctx, delivererID)
}

func (s *locationService) reload(ctx context.Context, delivererID uuid.UUID) (*entity.Deliverer, error) {
	deliverer, err := s.delivererRepo.FindByID(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to reload deliverer")
	}

	return deliverer, nil
}

func normalizeAvailability(windows []entity.TimeWindow) ([]entity.TimeWindow, error) {
	if len(windows) > maxAvailabilityWindows {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("at most %d availability windows are allowed", maxAvailabilityWindows))
	}

	sorted := slices.Clone(windows)
	for i, w := range sorted {
		if w.Start.IsZero() || w.End.IsZero() {
			return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("availability window %d needs both start and end", i))
		}
		if !w.End.After(w.Start) {
			return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("availability window %d must end after it starts", i))
		}
	}
	slices.SortStableFunc(sorted, func(a, b entity.TimeWindow) int {
		return a.Start.Compare(b.Start)
	})

	return sorted, nil
}
