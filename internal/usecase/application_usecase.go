package usecase

import (
	"context"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyInput is a deliverer's offer on an announcement.
type ApplyInput struct {
	ProposedPrice *float64 // nil offers the announcement price
	Message       string
}

// ApplicationUsecase defines the application lifecycle between deliverers and clients.
type ApplicationUsecase interface {
	// Apply records a pending application of the deliverer on a published announcement.
	Apply(ctx context.Context, delivererID, announcementID uuid.UUID, input *ApplyInput) (*entity.Application, error)

	// Accept accepts an application on the client's announcement, rejects the other
	// pending ones and marks the announcement as matched, atomically.
	Accept(ctx context.Context, clientID, applicationID uuid.UUID) (*entity.Application, error)

	// Reject rejects a pending application on the client's announcement.
	Reject(ctx context.Context, clientID, applicationID uuid.UUID) (*entity.Application, error)

	// ListDelivererApplications lists the deliverer's applications, newest first.
	ListDelivererApplications(ctx context.Context, delivererID uuid.UUID) ([]*entity.Application, error)
}
