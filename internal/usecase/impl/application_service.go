package impl

import (
	"context"
	"log/slog"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/errors"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
)

type applicationService struct {
	txManager        repository.TransactionManager
	applicationRepo  repository.ApplicationRepository
	announcementRepo repository.AnnouncementRepository
	delivererRepo    repository.DelivererRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	txManager repository.TransactionManager,
	applicationRepo repository.ApplicationRepository,
	announcementRepo repository.AnnouncementRepository,
	delivererRepo repository.DelivererRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	return &applicationService{
		txManager:        txManager,
		applicationRepo:  applicationRepo,
		announcementRepo: announcementRepo,
		delivererRepo:    delivererRepo,
		publisher:        publisher,
		logger:           logger,
		now:              time.Now,
	}
}

// Apply records a pending application of the deliverer on a published announcement.
func (s *applicationService) Apply(ctx context.Context, delivererID, announcementID uuid.UUID, input *usecase.ApplyInput) (*entity.Application, error) {
	deliverer, err := s.delivererRepo.FindByID(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to find deliverer")
	}
	if !deliverer.IsApproved() {
		return nil, domainerrors.ErrDelivererNotApproved
	}

	announcement, err := s.announcementRepo.FindByID(ctx, announcementID)
	if err != nil {
		return nil, toAppError(err, "failed to find announcement")
	}
	if !announcement.IsOpen() {
		return nil, domainerrors.ErrAnnouncementNotOpen
	}

	price := announcement.Price
	if input.ProposedPrice != nil {
		price = *input.ProposedPrice
	}
	if price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("proposed price must not be negative")
	}

	now := s.now()
	application := &entity.Application{
		ID:             uuid.New(),
		AnnouncementID: announcement.ID,
		DelivererID:    delivererID,
		ProposedPrice:  price,
		Message:        input.Message,
		Status:         entity.ApplicationStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, repository.ErrApplicationConflict) {
			return nil, domainerrors.ErrDuplicateApplication
		}

		return nil, toAppError(err, "failed to create application")
	}

	publishEvent(ctx, s.publisher, s.logger, &service.MatchEvent{
		Type:           service.MatchEventApplicationCreated,
		AnnouncementID: announcement.ID.String(),
		ApplicationID:  application.ID.String(),
		DelivererID:    delivererID.String(),
		ClientID:       announcement.ClientID.String(),
	})

	return application, nil
}

// Accept accepts an application, rejects the other pending ones and marks the
// announcement as matched in one transaction.
func (s *applicationService) Accept(ctx context.Context, clientID, applicationID uuid.UUID) (*entity.Application, error) {
	var (
		accepted *entity.Application
		rejected []*entity.Application
		pickupAt *time.Time
	)

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		applicationRepo := factory.NewApplicationRepository()
		announcementRepo := factory.NewAnnouncementRepository()

		application, announcement, err := s.findDecidable(ctx, applicationRepo, announcementRepo, clientID, applicationID)
		if err != nil {
			return err
		}

		matched, err := applicationRepo.HasAccepted(ctx, announcement.ID)
		if err != nil {
			return toAppError(err, "failed to check accepted applications")
		}
		if matched || announcement.Status == entity.AnnouncementStatusMatched {
			return domainerrors.ErrAnnouncementAlreadyMatched
		}
		if !announcement.Status.CanTransitionTo(entity.AnnouncementStatusMatched) {
			return domainerrors.ErrAnnouncementNotOpen
		}

		if err := applicationRepo.UpdateStatus(ctx, application.ID, entity.ApplicationStatusAccepted); err != nil {
			if errors.Is(err, repository.ErrApplicationConflict) {
				return domainerrors.ErrAnnouncementAlreadyMatched
			}

			return toAppError(err, "failed to accept application")
		}

		rejected, err = applicationRepo.RejectPendingExcept(ctx, announcement.ID, application.ID)
		if err != nil {
			return toAppError(err, "failed to reject competing applications")
		}

		if err := announcementRepo.UpdateStatus(ctx, announcement.ID, entity.AnnouncementStatusMatched); err != nil {
			return toAppError(err, "failed to mark announcement as matched")
		}

		application.Status = entity.ApplicationStatusAccepted
		application.UpdatedAt = s.now()
		accepted = application
		if !announcement.PickupWindow.IsZero() {
			start := announcement.PickupWindow.Start
			pickupAt = &start
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, &service.MatchEvent{
		Type:           service.MatchEventApplicationAccepted,
		AnnouncementID: accepted.AnnouncementID.String(),
		ApplicationID:  accepted.ID.String(),
		DelivererID:    accepted.DelivererID.String(),
		ClientID:       clientID.String(),
		PickupAt:       pickupAt,
	})
	for _, r := range rejected {
		publishEvent(ctx, s.publisher, s.logger, &service.MatchEvent{
			Type:           service.MatchEventApplicationRejected,
			AnnouncementID: r.AnnouncementID.String(),
			ApplicationID:  r.ID.String(),
			DelivererID:    r.DelivererID.String(),
			ClientID:       clientID.String(),
		})
	}

	return accepted, nil
}

// Reject rejects a pending application on the client's announcement.
func (s *applicationService) Reject(ctx context.Context, clientID, applicationID uuid.UUID) (*entity.Application, error) {
	application, _, err := s.findDecidable(ctx, s.applicationRepo, s.announcementRepo, clientID, applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, application.ID, entity.ApplicationStatusRejected); err != nil {
		return nil, toAppError(err, "failed to reject application")
	}
	application.Status = entity.ApplicationStatusRejected
	application.UpdatedAt = s.now()

	publishEvent(ctx, s.publisher, s.logger, &service.MatchEvent{
		Type:           service.MatchEventApplicationRejected,
		AnnouncementID: application.AnnouncementID.String(),
		ApplicationID:  application.ID.String(),
		DelivererID:    application.DelivererID.String(),
		ClientID:       clientID.String(),
	})

	return application, nil
}

// ListDelivererApplications lists the deliverer's applications, newest first.
func (s *applicationService) ListDelivererApplications(ctx context.Context, delivererID uuid.UUID) ([]*entity.Application, error) {
	applications, err := s.applicationRepo.FindByDeliverer(ctx, delivererID)
	if err != nil {
		return nil, toAppError(err, "failed to list applications")
	}

	return applications, nil
}

// findDecidable loads a pending application on an announcement owned by the client.
func (s *applicationService) findDecidable(
	ctx context.Context,
	applicationRepo repository.ApplicationRepository,
	announcementRepo repository.AnnouncementRepository,
	clientID, applicationID uuid.UUID,
) (*entity.Application, *entity.Announcement, error) {
	application, err := applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, nil, toAppError(err, "failed to find application")
	}

	announcement, err := announcementRepo.FindByID(ctx, application.AnnouncementID)
	if err != nil {
		return nil, nil, toAppError(err, "failed to find announcement")
	}
	if announcement.ClientID != clientID {
		return nil, nil, domainerrors.ErrAnnouncementOwnershipViolation
	}
	if application.Status != entity.ApplicationStatusPending {
		return nil, nil, domainerrors.ErrApplicationNotPending
	}

	return application, announcement, nil
}
