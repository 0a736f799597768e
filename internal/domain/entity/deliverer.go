package entity

import (
	"time"

	"github.com/google/uuid"
)

// ValidationStatus is the outcome of a deliverer's document review.
type ValidationStatus string

const (
	ValidationStatusPending  ValidationStatus = "pending"
	ValidationStatusApproved ValidationStatus = "approved"
	ValidationStatusRejected ValidationStatus = "rejected"
)

// VehicleType is the means of transport a deliverer declared.
type VehicleType string

const (
	VehicleTypeOnFoot  VehicleType = "on_foot"
	VehicleTypeBike    VehicleType = "bike"
	VehicleTypeScooter VehicleType = "scooter"
	VehicleTypeCar     VehicleType = "car"
	VehicleTypeVan     VehicleType = "van"
	VehicleTypeTruck   VehicleType = "truck"
)

// Vehicle holds the declared carrying capacity. Zero values mean "not declared".
type Vehicle struct {
	Type           VehicleType `json:"type"`
	MaxWeightKg    float64     `json:"max_weight_kg"`
	MaxVolumeM3    float64     `json:"max_volume_m3"`
	Refrigerated   bool        `json:"refrigerated"`
	HandlesFragile bool        `json:"handles_fragile"`
}

// Fits reports whether the cargo is known to fit the vehicle.
// A declared cargo attribute the vehicle has no matching capacity for does not fit.
func (v Vehicle) Fits(c Cargo) bool {
	if c.WeightKg > 0 && (v.MaxWeightKg <= 0 || c.WeightKg > v.MaxWeightKg) {
		return false
	}
	if vol := c.VolumeM3(); vol > 0 && (v.MaxVolumeM3 <= 0 || vol > v.MaxVolumeM3) {
		return false
	}
	if c.Fragile && !v.HandlesFragile {
		return false
	}
	if c.NeedsCooling && !v.Refrigerated {
		return false
	}

	return true
}

// Deliverer is the matching view of a deliverer profile.
type Deliverer struct {
	ID                  uuid.UUID        `json:"id"`
	Location            *Location        `json:"location,omitempty"` // Last reported position, nil when never shared.
	LocationUpdatedAt   time.Time        `json:"location_updated_at"`
	Vehicle             Vehicle          `json:"vehicle"`
	ValidationStatus    ValidationStatus `json:"validation_status"`
	Availability        []TimeWindow     `json:"availability"` // Empty means always available.
	Rating              float64          `json:"rating"`       // Aggregate rating on a 0-5 scale.
	CompletedDeliveries int              `json:"completed_deliveries"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// IsApproved reports whether the deliverer passed document validation.
func (d *Deliverer) IsApproved() bool {
	return d.ValidationStatus == ValidationStatusApproved
}

// HasLocation reports whether a usable position is known.
func (d *Deliverer) HasLocation() bool {
	return d.Location != nil && d.Location.IsValid()
}

// IsLocationStale reports whether the position is older than maxAge at now.
func (d *Deliverer) IsLocationStale(now time.Time, maxAge time.Duration) bool {
	if !d.HasLocation() || d.LocationUpdatedAt.IsZero() {
		return true
	}

	return now.Sub(d.LocationUpdatedAt) > maxAge
}

// AvailableAt reports whether t falls in one of the availability windows.
func (d *Deliverer) AvailableAt(t time.Time) bool {
	if len(d.Availability) == 0 {
		return true
	}
	for _, w := range d.Availability {
		if w.Contains(t) {
			return true
		}
	}

	return false
}
