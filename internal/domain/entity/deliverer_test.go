package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVehicle_Fits(t *testing.T) {
	van := Vehicle{Type: VehicleTypeVan, MaxWeightKg: 500, MaxVolumeM3: 3, HandlesFragile: true}

	tests := []struct {
		name    string
		vehicle Vehicle
		cargo   Cargo
		want    bool
	}{
		{name: "nothing declared", vehicle: Vehicle{}, cargo: Cargo{}, want: true},
		{name: "within capacity", vehicle: van, cargo: Cargo{WeightKg: 20, LengthCm: 100, WidthCm: 50, HeightCm: 50}, want: true},
		{name: "too heavy", vehicle: van, cargo: Cargo{WeightKg: 600}, want: false},
		{name: "too bulky", vehicle: van, cargo: Cargo{LengthCm: 200, WidthCm: 200, HeightCm: 100}, want: false},
		{name: "weight without declared capacity", vehicle: Vehicle{Type: VehicleTypeBike}, cargo: Cargo{WeightKg: 1}, want: false},
		{name: "fragile without handling", vehicle: Vehicle{MaxWeightKg: 10}, cargo: Cargo{WeightKg: 1, Fragile: true}, want: false},
		{name: "cooling without fridge", vehicle: van, cargo: Cargo{NeedsCooling: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.vehicle.Fits(tt.cargo))
		})
	}
}

func TestDeliverer_IsLocationStale(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	loc := NewLocation(48.85, 2.35)

	fresh := &Deliverer{Location: &loc, LocationUpdatedAt: now.Add(-10 * time.Minute)}
	old := &Deliverer{Location: &loc, LocationUpdatedAt: now.Add(-2 * time.Hour)}
	unknown := &Deliverer{}

	assert.False(t, fresh.IsLocationStale(now, 30*time.Minute))
	assert.True(t, old.IsLocationStale(now, 30*time.Minute))
	assert.True(t, unknown.IsLocationStale(now, 30*time.Minute))
}

func TestDeliverer_AvailableAt(t *testing.T) {
	morning := TimeWindow{
		Start: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	d := &Deliverer{Availability: []TimeWindow{morning}}

	assert.True(t, d.AvailableAt(morning.Start.Add(time.Hour)))
	assert.False(t, d.AvailableAt(morning.End.Add(time.Hour)))
	assert.True(t, (&Deliverer{}).AvailableAt(morning.End.Add(time.Hour)))
}

func TestLocation_IsValid(t *testing.T) {
	assert.True(t, NewLocation(90, -180).IsValid())
	assert.False(t, NewLocation(90.0001, 0).IsValid())
	assert.False(t, NewLocation(0, 180.5).IsValid())
}
