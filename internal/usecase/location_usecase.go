package usecase

import (
	"context"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateLocationInput is a position reported by the deliverer's device.
type UpdateLocationInput struct {
	Latitude  float64
	Longitude float64
}

// UpdateAvailabilityInput replaces the deliverer's declared availability.
type UpdateAvailabilityInput struct {
	Windows []entity.TimeWindow // Empty means always available
}

// LocationUsecase keeps the matching inputs of a deliverer profile current.
type LocationUsecase interface {
	// UpdateLocation records the deliverer's current position and returns the refreshed profile.
	UpdateLocation(ctx context.Context, delivererID uuid.UUID, input *UpdateLocationInput) (*entity.Deliverer, error)

	// UpdateAvailability replaces the deliverer's availability windows and returns the refreshed profile.
	UpdateAvailability(ctx context.Context, delivererID uuid.UUID, input *UpdateAvailabilityInput) (*entity.Deliverer, error)
}
