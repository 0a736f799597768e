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

// announcementRepository implements the domain.AnnouncementRepository interface.
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository is the constructor for announcementRepository.
func NewAnnouncementRepository(db *gorm.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// FindPublished returns published announcements matching the criteria, oldest first.
func (repo *announcementRepository) FindPublished(ctx context.Context, criteria repository.AnnouncementCriteria) ([]*entity.Announcement, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.AnnouncementStatusPublished))

	if criteria.Area != nil {
		query = query.
			Where("pickup_latitude BETWEEN ? AND ?", criteria.Area.Min.Lat(), criteria.Area.Max.Lat()).
			Where("pickup_longitude BETWEEN ? AND ?", criteria.Area.Min.Lon(), criteria.Area.Max.Lon())
	}
	if len(criteria.DeliveryTypes) > 0 {
		types := make([]string, 0, len(criteria.DeliveryTypes))
		for _, t := range criteria.DeliveryTypes {
			types = append(types, string(t))
		}
		query = query.Where("type IN ?", types)
	}
	if criteria.Urgency != "" {
		query = query.Where("urgency = ?", string(criteria.Urgency))
	}
	// Flexible announcements have no pickup date and pass any range.
	if !criteria.PickupFrom.IsZero() {
		query = query.Where("pickup_start IS NULL OR pickup_start >= ?", criteria.PickupFrom)
	}
	if !criteria.PickupTo.IsZero() {
		query = query.Where("pickup_start IS NULL OR pickup_start <= ?", criteria.PickupTo)
	}

	var models []*model.AnnouncementModel
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published announcements")
	}

	return toAnnouncementDomains(models), nil
}

// FindByID retrieves an announcement by its ID.
func (repo *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcementM model.AnnouncementModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&announcementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "failed to find announcement by ID")
	}

	return toAnnouncementDomain(&announcementM), nil
}

// FindByIDs retrieves the announcements with the given IDs.
func (repo *announcementRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Announcement, error) {
	if len(ids) == 0 {
		return []*entity.Announcement{}, nil
	}

	var models []*model.AnnouncementModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find announcements by IDs")
	}

	return toAnnouncementDomains(models), nil
}

// UpdateStatus moves an announcement to a new status.
func (repo *announcementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AnnouncementStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnnouncementModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update announcement status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnnouncementNotFound
	}

	return nil
}

func toAnnouncementDomains(models []*model.AnnouncementModel) []*entity.Announcement {
	announcements := make([]*entity.Announcement, 0, len(models))
	for _, m := range models {
		announcements = append(announcements, toAnnouncementDomain(m))
	}

	return announcements
}

func toAnnouncementDomain(data *model.AnnouncementModel) *entity.Announcement {
	if data == nil {
		return nil
	}

	return &entity.Announcement{
		ID:       data.ID,
		ClientID: data.ClientID,
		Title:    data.Title,
		Type:     entity.DeliveryType(data.Type),
		Status:   entity.AnnouncementStatus(data.Status),
		Pickup:   entity.NewLocation(data.PickupLatitude, data.PickupLongitude),
		Delivery: entity.NewLocation(data.DeliveryLatitude, data.DeliveryLongitude),
		PickupWindow: entity.TimeWindow{
			Start: timeValue(data.PickupStart),
			End:   timeValue(data.PickupEnd),
		},
		DeliveryWindow: entity.TimeWindow{
			Start: timeValue(data.DeliveryStart),
			End:   timeValue(data.DeliveryEnd),
		},
		Price: data.Price,
		Cargo: entity.Cargo{
			WeightKg:     data.WeightKg,
			LengthCm:     data.LengthCm,
			WidthCm:      data.WidthCm,
			HeightCm:     data.HeightCm,
			Fragile:      data.Fragile,
			NeedsCooling: data.NeedsCooling,
		},
		Urgency:   entity.Urgency(data.Urgency),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
