package model

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementModel is the GORM-specific struct for the 'announcements' table.
// The marketplace service owns the writes; matching reads it and moves the status.
type AnnouncementModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ClientID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title             string     `gorm:"type:varchar(255);not null"`
	Type              string     `gorm:"type:varchar(50);not null"`
	Status            string     `gorm:"type:varchar(20);not null;index:idx_announcements_status_pickup"`
	PickupLatitude    float64    `gorm:"type:decimal(10,8);not null;index:idx_announcements_status_pickup"`
	PickupLongitude   float64    `gorm:"type:decimal(11,8);not null;index:idx_announcements_status_pickup"`
	DeliveryLatitude  float64    `gorm:"type:decimal(10,8);not null"`
	DeliveryLongitude float64    `gorm:"type:decimal(11,8);not null"`
	PickupStart       *time.Time `gorm:"index"`
	PickupEnd         *time.Time
	DeliveryStart     *time.Time
	DeliveryEnd       *time.Time
	Price             float64 `gorm:"type:decimal(10,2);not null;check:price >= 0"`
	WeightKg          float64 `gorm:"not null;default:0"`
	LengthCm          float64 `gorm:"not null;default:0"`
	WidthCm           float64 `gorm:"not null;default:0"`
	HeightCm          float64 `gorm:"not null;default:0"`
	Fragile           bool    `gorm:"not null;default:false"`
	NeedsCooling      bool    `gorm:"not null;default:false"`
	Urgency           string  `gorm:"type:varchar(20);not null;default:'normal'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnnouncementModel) TableName() string {
	return "announcements"
}
