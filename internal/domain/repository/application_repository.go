package repository

import (
	"context"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrApplicationNotFound is returned when an application does not exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrApplicationConflict is returned when a uniqueness rule on applications is violated.
	ErrApplicationConflict = errors.New("application conflicts with an existing one")
)

// ApplicationRepository defines persistence of deliverer applications.
type ApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, application *entity.Application) error

	// FindByID retrieves an application by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)

	// FindByDeliverer lists a deliverer's applications, newest first.
	FindByDeliverer(ctx context.Context, delivererID uuid.UUID) ([]*entity.Application, error)

	// FindActiveAnnouncementIDs returns the announcements the deliverer has a pending or accepted application on.
	FindActiveAnnouncementIDs(ctx context.Context, delivererID uuid.UUID) ([]uuid.UUID, error)

	// FindAcceptedByDeliverer lists the deliverer's accepted applications.
	FindAcceptedByDeliverer(ctx context.Context, delivererID uuid.UUID) ([]*entity.Application, error)

	// HasAccepted reports whether the announcement already has an accepted application.
	HasAccepted(ctx context.Context, announcementID uuid.UUID) (bool, error)

	// UpdateStatus changes an application's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error

	// RejectPendingExcept rejects every pending application of the announcement but keepID.
	// It returns the rejected applications.
	RejectPendingExcept(ctx context.Context, announcementID, keepID uuid.UUID) ([]*entity.Application, error)
}
