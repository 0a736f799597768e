package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationModel is the GORM-specific struct for the 'announcement_applications' table.
// The partial unique indexes keep one live application per (announcement, deliverer)
// and one accepted application per announcement.
type ApplicationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AnnouncementID uuid.UUID `gorm:"type:uuid;not null;index:idx_applications_live_pair,unique,where:status <> 'rejected';index:idx_applications_accepted,unique,where:status = 'accepted'"`
	DelivererID    uuid.UUID `gorm:"type:uuid;not null;index;index:idx_applications_live_pair,unique,where:status <> 'rejected'"`
	ProposedPrice  float64   `gorm:"type:decimal(10,2);not null;check:proposed_price >= 0"`
	Message        string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "announcement_applications"
}
