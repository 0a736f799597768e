package entity

import (
	"time"

	"github.com/google/uuid"
)

// StopKind tells whether a stop collects or hands over goods.
type StopKind string

const (
	StopKindPickup  StopKind = "pickup"
	StopKindDropoff StopKind = "dropoff"
)

// IsValid checks if the kind is a known value.
func (k StopKind) IsValid() bool {
	return k == StopKindPickup || k == StopKindDropoff
}

// Stop is one place a deliverer has to visit for an announcement.
type Stop struct {
	AnnouncementID   uuid.UUID  `json:"announcement_id"`
	Kind             StopKind   `json:"kind"`
	Location         Location   `json:"location"`
	Deadline         *time.Time `json:"deadline,omitempty"`          // Requested latest arrival, nil when flexible.
	Sequence         int        `json:"sequence"`                    // Position in the route, starting at 0.
	DistanceKm       float64    `json:"distance_km"`                 // Leg length from the previous stop.
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"` // Set when a departure time was known.
	Late             bool       `json:"late"`                        // Estimated arrival is after the deadline.
}

// Key identifies a stop inside one route.
func (s Stop) Key() StopKey {
	return StopKey{AnnouncementID: s.AnnouncementID, Kind: s.Kind}
}

// StopKey is the (announcement, kind) pair that must be unique in a route.
type StopKey struct {
	AnnouncementID uuid.UUID
	Kind           StopKind
}

// Route is an ordered plan of stops for one deliverer on one day.
type Route struct {
	ID               uuid.UUID `json:"id"`
	DelivererID      uuid.UUID `json:"deliverer_id"`
	PlanningDate     time.Time `json:"planning_date"` // Day the route is planned for, truncated to midnight UTC.
	Start            Location  `json:"start"`
	Stops            []Stop    `json:"stops"`
	TotalDistanceKm  float64   `json:"total_distance_km"`
	TotalDurationMin float64   `json:"total_duration_min"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PlanningDay truncates t to the UTC day used as a route key.
func PlanningDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
