package postgres

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/errors"
	"ecodeli/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// delivererRepository implements the domain.DelivererRepository interface.
type delivererRepository struct {
	db *gorm.DB
}

// NewDelivererRepository is the constructor for delivererRepository.
func NewDelivererRepository(db *gorm.DB) repository.DelivererRepository {
	return &delivererRepository{db: db}
}

// FindByID retrieves a deliverer by account ID.
func (repo *delivererRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Deliverer, error) {
	var delivererM model.DelivererModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&delivererM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDelivererNotFound
		}

		return nil, errors.Wrap(err, "failed to find deliverer by ID")
	}

	return toDelivererDomain(&delivererM), nil
}

// FindApproved returns validated deliverers with a known position.
func (repo *delivererRepository) FindApproved(ctx context.Context, criteria repository.DelivererCriteria) ([]*entity.Deliverer, error) {
	query := repo.db.WithContext(ctx).
		Where("validation_status = ?", string(entity.ValidationStatusApproved)).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL")

	if criteria.Area != nil {
		query = query.
			Where("latitude BETWEEN ? AND ?", criteria.Area.Min.Lat(), criteria.Area.Max.Lat()).
			Where("longitude BETWEEN ? AND ?", criteria.Area.Min.Lon(), criteria.Area.Max.Lon())
	}
	if criteria.MinRating > 0 {
		query = query.Where("rating >= ?", criteria.MinRating)
	}

	var models []*model.DelivererModel
	if err := query.Order("rating DESC, id ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved deliverers")
	}

	deliverers := make([]*entity.Deliverer, 0, len(models))
	for _, m := range models {
		deliverers = append(deliverers, toDelivererDomain(m))
	}

	return deliverers, nil
}

// UpdateLocation stores the position and when it was observed.
func (repo *delivererRepository) UpdateLocation(ctx context.Context, id uuid.UUID, loc entity.Location, at time.Time) error {
	lat, lon := loc.Latitude, loc.Longitude
	update := &model.DelivererModel{
		Latitude:          &lat,
		Longitude:         &lon,
		LocationUpdatedAt: &at,
	}

	// Select forces the write of zero coordinates.
	result := repo.db.WithContext(ctx).
		Model(&model.DelivererModel{}).
		Where("id = ?", id).
		Select("latitude", "longitude", "location_updated_at", "updated_at").
		Updates(update)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update deliverer location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDelivererNotFound
	}

	return nil
}

// UpdateAvailability replaces the stored availability windows.
func (repo *delivererRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, windows []entity.TimeWindow) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DelivererModel{}).
		Where("id = ?", id).
		Select("availability", "updated_at").
		Updates(&model.DelivererModel{Availability: fromAvailabilityDomain(windows)})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update deliverer availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDelivererNotFound
	}

	return nil
}

func fromAvailabilityDomain(windows []entity.TimeWindow) []model.AvailabilityWindow {
	stored := make([]model.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		stored = append(stored, model.AvailabilityWindow{Start: w.Start.UTC(), End: w.End.UTC()})
	}

	return stored
}

func toDelivererDomain(data *model.DelivererModel) *entity.Deliverer {
	if data == nil {
		return nil
	}

	deliverer := &entity.Deliverer{
		ID:                data.ID,
		LocationUpdatedAt: timeValue(data.LocationUpdatedAt),
		Vehicle: entity.Vehicle{
			Type:           entity.VehicleType(data.VehicleType),
			MaxWeightKg:    data.MaxWeightKg,
			MaxVolumeM3:    data.MaxVolumeM3,
			Refrigerated:   data.Refrigerated,
			HandlesFragile: data.HandlesFragile,
		},
		ValidationStatus:    entity.ValidationStatus(data.ValidationStatus),
		Rating:              data.Rating,
		CompletedDeliveries: data.CompletedDeliveries,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		loc := entity.NewLocation(*data.Latitude, *data.Longitude)
		deliverer.Location = &loc
	}
	if len(data.Availability) > 0 {
		deliverer.Availability = make([]entity.TimeWindow, 0, len(data.Availability))
		for _, w := range data.Availability {
			deliverer.Availability = append(deliverer.Availability, entity.TimeWindow{Start: w.Start, End: w.End})
		}
	}

	return deliverer
}

