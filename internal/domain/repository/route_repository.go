package repository

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/errors"

	"github.com/google/uuid"
)

// ErrRouteNotFound is returned when no route is stored for a deliverer and day.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository stores one planned route per deliverer and day.
type RouteRepository interface {
	// Save replaces the route stored for the deliverer and planning day.
	Save(ctx context.Context, route *entity.Route) error

	// FindByDelivererAndDate retrieves the route planned for the given day.
	FindByDelivererAndDate(ctx context.Context, delivererID uuid.UUID, day time.Time) (*entity.Route, error)
}
