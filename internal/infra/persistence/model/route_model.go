package model

import (
	"time"

	"github.com/google/uuid"
)

// RouteModel is the GORM-specific struct for the 'delivery_routes' table.
type RouteModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DelivererID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_routes_deliverer_day"`
	PlanningDate     time.Time        `gorm:"type:date;not null;uniqueIndex:idx_routes_deliverer_day"`
	StartLatitude    float64          `gorm:"type:decimal(10,8);not null"`
	StartLongitude   float64          `gorm:"type:decimal(11,8);not null"`
	TotalDistanceKm  float64          `gorm:"not null"`
	TotalDurationMin float64          `gorm:"not null"`
	Stops            []RouteStopModel `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "delivery_routes"
}

// RouteStopModel is the GORM-specific struct for the 'delivery_route_stops' table.
type RouteStopModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RouteID          uuid.UUID `gorm:"type:uuid;not null;index"`
	AnnouncementID   uuid.UUID `gorm:"type:uuid;not null"`
	Kind             string    `gorm:"type:varchar(10);not null"`
	Sequence         int       `gorm:"not null"`
	Latitude         float64   `gorm:"type:decimal(10,8);not null"`
	Longitude        float64   `gorm:"type:decimal(11,8);not null"`
	Deadline         *time.Time
	DistanceKm       float64 `gorm:"not null"`
	EstimatedArrival *time.Time
	Late             bool `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (RouteStopModel) TableName() string {
	return "delivery_route_stops"
}
