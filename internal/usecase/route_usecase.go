package usecase

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/matching"

	"github.com/google/uuid"
)

// PlanRouteInput selects the day to plan and where the deliverer starts.
type PlanRouteInput struct {
	Date     time.Time        // Zero plans today
	Start    *entity.Location // nil starts from the deliverer's last position
	DepartAt time.Time        // Zero skips arrival estimates
}

// PlannedRoute is a stored route plus the stops that could not be placed.
type PlannedRoute struct {
	Route      *entity.Route
	Violations []matching.StopViolation
}

// RouteUsecase plans and reads a deliverer's daily routes.
type RouteUsecase interface {
	// PlanRoute sequences the deliverer's matched announcements for a day and stores the result,
	// replacing any route already planned for that day.
	PlanRoute(ctx context.Context, delivererID uuid.UUID, input *PlanRouteInput) (*PlannedRoute, error)

	// GetRoute returns the route stored for the deliverer and day.
	GetRoute(ctx context.Context, delivererID uuid.UUID, date time.Time) (*entity.Route, error)
}
