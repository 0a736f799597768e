package repository

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrDelivererNotFound is returned when no deliverer profile exists for an account.
var ErrDelivererNotFound = errors.New("deliverer not found")

// DelivererCriteria narrows the deliverers loaded for announcement-side matching.
type DelivererCriteria struct {
	Area      *orb.Bound // Bounding box the last known position must fall in.
	MinRating float64
}

// DelivererRepository defines access to deliverer profiles. Profiles are created
// by account onboarding; this service only moves the position and availability.
type DelivererRepository interface {
	// FindByID retrieves a deliverer by account ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deliverer, error)

	// FindApproved returns validated deliverers with a known position matching the criteria.
	FindApproved(ctx context.Context, criteria DelivererCriteria) ([]*entity.Deliverer, error)

	// UpdateLocation records the deliverer's position as observed at the given time.
	UpdateLocation(ctx context.Context, id uuid.UUID, loc entity.Location, at time.Time) error

	// UpdateAvailability replaces the declared availability windows. An empty list means always available.
	UpdateAvailability(ctx context.Context, id uuid.UUID, windows []entity.TimeWindow) error
}
