// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrAnnouncementNotFound is returned when an announcement does not exist.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementCriteria narrows the published announcements loaded for matching.
// Zero fields apply no restriction.
type AnnouncementCriteria struct {
	Area          *orb.Bound // Bounding box the pickup point must fall in.
	DeliveryTypes []entity.DeliveryType
	Urgency       entity.Urgency
	PickupFrom    time.Time
	PickupTo      time.Time
}

// AnnouncementRepository defines the announcement operations the matching flows need.
type AnnouncementRepository interface {
	// FindPublished returns published announcements matching the criteria, oldest first.
	// Announcements without a pickup date are always included by the date criteria.
	FindPublished(ctx context.Context, criteria AnnouncementCriteria) ([]*entity.Announcement, error)

	// FindByID retrieves an announcement by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)

	// FindByIDs retrieves the announcements with the given IDs. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Announcement, error)

	// UpdateStatus moves an announcement to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AnnouncementStatus) error
}
