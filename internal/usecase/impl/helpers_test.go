package impl

import (
	"io"
	"log/slog"
	"time"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	paris    = entity.NewLocation(48.8566, 2.3522)
	fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approvedDeliverer(at entity.Location) *entity.Deliverer {
	return &entity.Deliverer{
		ID:                uuid.New(),
		Location:          &at,
		LocationUpdatedAt: fixedNow.Add(-5 * time.Minute),
		ValidationStatus:  entity.ValidationStatusApproved,
		Rating:            4.5,
		Vehicle:           entity.Vehicle{Type: entity.VehicleTypeVan, MaxWeightKg: 500, MaxVolumeM3: 4},
	}
}

// publishedAnnouncement places the pickup north of origin by km kilometres.
func publishedAnnouncement(origin entity.Location, km, price float64) *entity.Announcement {
	return &entity.Announcement{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		Type:      entity.DeliveryTypePackage,
		Status:    entity.AnnouncementStatusPublished,
		Pickup:    entity.NewLocation(origin.Latitude+km/111.195, origin.Longitude),
		Delivery:  entity.NewLocation(origin.Latitude+(km+2)/111.195, origin.Longitude),
		Price:     price,
		Urgency:   entity.UrgencyNormal,
		CreatedAt: fixedNow.Add(-time.Hour),
	}
}
