package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is one declared availability range, stored as JSON.
type AvailabilityWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DelivererModel is the GORM-specific struct for the 'deliverers' table.
type DelivererModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"` // Same ID as the account
	Latitude            *float64  `gorm:"type:decimal(10,8);index:idx_deliverers_position"`
	Longitude           *float64  `gorm:"type:decimal(11,8);index:idx_deliverers_position"`
	LocationUpdatedAt   *time.Time
	VehicleType         string               `gorm:"type:varchar(20);not null"`
	MaxWeightKg         float64              `gorm:"not null;default:0"`
	MaxVolumeM3         float64              `gorm:"not null;default:0"`
	Refrigerated        bool                 `gorm:"not null;default:false"`
	HandlesFragile      bool                 `gorm:"not null;default:false"`
	ValidationStatus    string               `gorm:"type:varchar(20);not null;default:'pending';index"`
	Availability        []AvailabilityWindow `gorm:"type:jsonb;serializer:json"`
	Rating              float64              `gorm:"type:decimal(3,2);not null;default:0"`
	CompletedDeliveries int                  `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DelivererModel) TableName() string {
	return "deliverers"
}
