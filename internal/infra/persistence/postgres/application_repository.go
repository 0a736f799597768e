package postgres

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/errors"
	"ecodeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applicationRepository implements the domain.ApplicationRepository interface.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create persists a new application.
func (repo *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	applicationM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrApplicationConflict, "deliverer already applied to this announcement")
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrAnnouncementNotFound, "invalid announcement reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("proposed price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}

	application.ID = applicationM.ID
	application.CreatedAt = applicationM.CreatedAt
	application.UpdatedAt = applicationM.UpdatedAt

	return nil
}

// FindByID retrieves an application by its ID.
func (repo *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var applicationM model.ApplicationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by ID")
	}

	return toApplicationDomain(&applicationM), nil
}

// FindByDeliverer lists a deliverer's applications, newest first.
func (repo *applicationRepository) FindByDeliverer(ctx context.Context, delivererID uuid.UUID) ([]*entity.Application, error) {
	var models []*model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("deliverer_id = ?", delivererID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find applications by deliverer")
	}

	return toApplicationDomains(models), nil
}

// FindActiveAnnouncementIDs returns the announcements with a live application from the deliverer.
func (repo *applicationRepository) FindActiveAnnouncementIDs(ctx context.Context, delivererID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("deliverer_id = ? AND status <> ?", delivererID, string(entity.ApplicationStatusRejected)).
		Pluck("announcement_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find applied announcement IDs")
	}

	return ids, nil
}

// FindAcceptedByDeliverer lists the deliverer's accepted applications.
func (repo *applicationRepository) FindAcceptedByDeliverer(ctx context.Context, delivererID uuid.UUID) ([]*entity.Application, error) {
	var models []*model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("deliverer_id = ? AND status = ?", delivererID, string(entity.ApplicationStatusAccepted)).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted applications")
	}

	return toApplicationDomains(models), nil
}

// HasAccepted reports whether the announcement already has an accepted application.
func (repo *applicationRepository) HasAccepted(ctx context.Context, announcementID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("announcement_id = ? AND status = ?", announcementID, string(entity.ApplicationStatusAccepted)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count accepted applications")
	}

	return count > 0, nil
}

// UpdateStatus changes an application's status.
func (repo *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		// The partial unique index rejects a second accepted application.
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrApplicationConflict, "announcement already has an accepted application")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update application status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// RejectPendingExcept rejects every pending application of the announcement but keepID.
func (repo *applicationRepository) RejectPendingExcept(ctx context.Context, announcementID, keepID uuid.UUID) ([]*entity.Application, error) {
	var models []*model.ApplicationModel
	if err := repo.db.WithContext(ctx).
		Where("announcement_id = ? AND id <> ? AND status = ?", announcementID, keepID, string(entity.ApplicationStatusPending)).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending applications")
	}
	if len(models) == 0 {
		return []*entity.Application{}, nil
	}

	ids := make([]uuid.UUID, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}

	now := time.Now()
	if err := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"status": string(entity.ApplicationStatusRejected), "updated_at": now}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reject pending applications")
	}

	rejected := toApplicationDomains(models)
	for _, a := range rejected {
		a.Status = entity.ApplicationStatusRejected
		a.UpdatedAt = now
	}

	return rejected, nil
}

func toApplicationDomains(models []*model.ApplicationModel) []*entity.Application {
	applications := make([]*entity.Application, 0, len(models))
	for _, m := range models {
		applications = append(applications, toApplicationDomain(m))
	}

	return applications
}

func toApplicationDomain(data *model.ApplicationModel) *entity.Application {
	if data == nil {
		return nil
	}

	return &entity.Application{
		ID:             data.ID,
		AnnouncementID: data.AnnouncementID,
		DelivererID:    data.DelivererID,
		ProposedPrice:  data.ProposedPrice,
		Message:        data.Message,
		Status:         entity.ApplicationStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromApplicationDomain(data *entity.Application) *model.ApplicationModel {
	if data == nil {
		return nil
	}

	return &model.ApplicationModel{
		ID:             data.ID,
		AnnouncementID: data.AnnouncementID,
		DelivererID:    data.DelivererID,
		ProposedPrice:  data.ProposedPrice,
		Message:        data.Message,
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
