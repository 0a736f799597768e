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

// routeRepository implements the domain.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

// Save replaces the route stored for the deliverer and planning day.
func (repo *routeRepository) Save(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		previous := tx.Model(&model.RouteModel{}).
			Select("id").
			Where("deliverer_id = ? AND planning_date = ?", routeM.DelivererID, routeM.PlanningDate)

		if err := tx.Where("route_id IN (?)", previous).Delete(&model.RouteStopModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete previous route stops")
		}
		if err := tx.Where("deliverer_id = ? AND planning_date = ?", routeM.DelivererID, routeM.PlanningDate).
			Delete(&model.RouteModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete previous route")
		}

		return tx.Create(routeM).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save route")
	}

	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// FindByDelivererAndDate retrieves the route planned for the given day.
func (repo *routeRepository) FindByDelivererAndDate(ctx context.Context, delivererID uuid.UUID, day time.Time) (*entity.Route, error) {
	var routeM model.RouteModel
	err := repo.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Where("deliverer_id = ? AND planning_date = ?", delivererID, entity.PlanningDay(day)).
		First(&routeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by deliverer and date")
	}

	return toRouteDomain(&routeM), nil
}

func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	route := &entity.Route{
		ID:               data.ID,
		DelivererID:      data.DelivererID,
		PlanningDate:     entity.PlanningDay(data.PlanningDate),
		Start:            entity.NewLocation(data.StartLatitude, data.StartLongitude),
		Stops:            make([]entity.Stop, 0, len(data.Stops)),
		TotalDistanceKm:  data.TotalDistanceKm,
		TotalDurationMin: data.TotalDurationMin,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	for _, s := range data.Stops {
		route.Stops = append(route.Stops, entity.Stop{
			AnnouncementID:   s.AnnouncementID,
			Kind:             entity.StopKind(s.Kind),
			Location:         entity.NewLocation(s.Latitude, s.Longitude),
			Deadline:         s.Deadline,
			Sequence:         s.Sequence,
			DistanceKm:       s.DistanceKm,
			EstimatedArrival: s.EstimatedArrival,
			Late:             s.Late,
		})
	}

	return route
}

func fromRouteDomain(data *entity.Route) *model.RouteModel {
	if data == nil {
		return nil
	}

	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	routeM := &model.RouteModel{
		ID:               id,
		DelivererID:      data.DelivererID,
		PlanningDate:     entity.PlanningDay(data.PlanningDate),
		StartLatitude:    data.Start.Latitude,
		StartLongitude:   data.Start.Longitude,
		TotalDistanceKm:  data.TotalDistanceKm,
		TotalDurationMin: data.TotalDurationMin,
		Stops:            make([]model.RouteStopModel, 0, len(data.Stops)),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	for _, s := range data.Stops {
		routeM.Stops = append(routeM.Stops, model.RouteStopModel{
			RouteID:          id,
			AnnouncementID:   s.AnnouncementID,
			Kind:             string(s.Kind),
			Sequence:         s.Sequence,
			Latitude:         s.Location.Latitude,
			Longitude:        s.Location.Longitude,
			Deadline:         s.Deadline,
			DistanceKm:       s.DistanceKm,
			EstimatedArrival: s.EstimatedArrival,
			Late:             s.Late,
		})
	}

	return routeM
}
