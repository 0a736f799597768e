package matching

import (
	"testing"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = entity.NewLocation(48.8566, 2.3522)

func newDeliverer(at entity.Location) *entity.Deliverer {
	return &entity.Deliverer{
		ID:                uuid.New(),
		Location:          &at,
		LocationUpdatedAt: time.Now(),
		ValidationStatus:  entity.ValidationStatusApproved,
		Rating:            4.0,
		Vehicle:           entity.Vehicle{Type: entity.VehicleTypeCar, MaxWeightKg: 100, MaxVolumeM3: 1},
	}
}

func newAnnouncement(pickup entity.Location, price float64) *entity.Announcement {
	return &entity.Announcement{
		ID:        uuid.New(),
		Type:      entity.DeliveryTypePackage,
		Status:    entity.AnnouncementStatusPublished,
		Pickup:    pickup,
		Delivery:  offsetKm(pickup, 3, 3),
		Price:     price,
		Urgency:   entity.UrgencyNormal,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func announcementIDs(candidates []Candidate) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.Announcement.ID)
	}

	return ids
}

func TestFilterCandidates_ProximityCeiling(t *testing.T) {
	deliverer := newDeliverer(paris)
	near := newAnnouncement(offsetKm(paris, 5, 0), 20)
	far := newAnnouncement(offsetKm(paris, 80, 0), 20)

	got, err := FilterCandidates(deliverer, []*entity.Announcement{near, far}, Constraints{MaxDistanceKm: 50})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].Announcement.ID)
	assert.Same(t, deliverer, got[0].Deliverer)
	assert.InDelta(t, 5.0, got[0].DistanceKm, 0.01)
}

func TestFilterCandidates_ParisScenarios(t *testing.T) {
	deliverer := newDeliverer(paris)
	nearby := newAnnouncement(entity.NewLocation(48.8606, 2.3376), 25)
	lyon := newAnnouncement(entity.NewLocation(45.7640, 4.8357), 25)
	announcements := []*entity.Announcement{lyon, nearby}
	constraints := Constraints{MaxDistanceKm: 10}

	t.Run("keeps the nearby pickup and drops Lyon", func(t *testing.T) {
		got, err := FilterCandidates(deliverer, announcements, constraints)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, nearby.ID, got[0].Announcement.ID)
		assert.InDelta(t, 1.157, got[0].DistanceKm, 0.01)
		assert.Greater(t, Distance(paris, lyon.Pickup), 390.0)
	})

	t.Run("repeated calls return the same result", func(t *testing.T) {
		first, err := FilterCandidates(deliverer, announcements, constraints)
		require.NoError(t, err)
		second, err := FilterCandidates(deliverer, announcements, constraints)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, []*entity.Announcement{lyon, nearby}, announcements)
	})
}

func TestFilterCandidates_DefaultCeilingIsFiftyKm(t *testing.T) {
	deliverer := newDeliverer(paris)
	inside := newAnnouncement(offsetKm(paris, 0, 49), 10)
	outside := newAnnouncement(offsetKm(paris, 0, 51), 10)

	got, err := FilterCandidates(deliverer, []*entity.Announcement{inside, outside}, Constraints{})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{inside.ID}, announcementIDs(got))
}

func TestFilterCandidates_Criteria(t *testing.T) {
	deliverer := newDeliverer(paris)
	pickupDay := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	cheap := newAnnouncement(offsetKm(paris, 1, 0), 5)
	pricey := newAnnouncement(offsetKm(paris, 2, 0), 500)
	shopping := newAnnouncement(offsetKm(paris, 3, 0), 30)
	shopping.Type = entity.DeliveryTypeShopping
	urgent := newAnnouncement(offsetKm(paris, 4, 0), 30)
	urgent.Urgency = entity.UrgencyUrgent
	dated := newAnnouncement(offsetKm(paris, 5, 0), 30)
	dated.PickupWindow = entity.TimeWindow{Start: pickupDay}
	lateDated := newAnnouncement(offsetKm(paris, 6, 0), 30)
	lateDated.PickupWindow = entity.TimeWindow{Start: pickupDay.Add(72 * time.Hour)}
	draft := newAnnouncement(offsetKm(paris, 1, 1), 30)
	draft.Status = entity.AnnouncementStatusDraft
	applied := newAnnouncement(offsetKm(paris, 2, 2), 30)

	pool := []*entity.Announcement{cheap, pricey, shopping, urgent, dated, lateDated, draft, applied}
	excluded := map[uuid.UUID]struct{}{applied.ID: {}}

	tests := []struct {
		name        string
		constraints Constraints
		want        []uuid.UUID
	}{
		{
			name:        "no criteria keeps published and not applied",
			constraints: Constraints{Excluded: excluded},
			want:        []uuid.UUID{cheap.ID, pricey.ID, shopping.ID, urgent.ID, dated.ID, lateDated.ID},
		},
		{
			name:        "price bounds are inclusive",
			constraints: Constraints{MinPrice: ptr(5.0), MaxPrice: ptr(30.0), Excluded: excluded},
			want:        []uuid.UUID{cheap.ID, shopping.ID, urgent.ID, dated.ID, lateDated.ID},
		},
		{
			name:        "type whitelist",
			constraints: Constraints{DeliveryTypes: []entity.DeliveryType{entity.DeliveryTypeShopping}},
			want:        []uuid.UUID{shopping.ID},
		},
		{
			name:        "urgency",
			constraints: Constraints{Urgency: entity.UrgencyUrgent},
			want:        []uuid.UUID{urgent.ID},
		},
		{
			name: "pickup range keeps flexible announcements",
			constraints: Constraints{
				PickupFrom: pickupDay.Add(-time.Hour),
				PickupTo:   pickupDay.Add(time.Hour),
				Excluded:   excluded,
			},
			want: []uuid.UUID{cheap.ID, pricey.ID, shopping.ID, urgent.ID, dated.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterCandidates(deliverer, pool, tt.constraints)
			require.NoError(t, err)
			assert.Equal(t, tt.want, announcementIDs(got))
		})
	}
}

func TestFilterCandidates_EmptyPoolIsNotAnError(t *testing.T) {
	got, err := FilterCandidates(newDeliverer(paris), nil, Constraints{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	far := newAnnouncement(offsetKm(paris, 500, 0), 10)
	got, err = FilterCandidates(newDeliverer(paris), []*entity.Announcement{far}, Constraints{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterCandidates_InvalidInput(t *testing.T) {
	valid := newAnnouncement(offsetKm(paris, 1, 0), 10)
	broken := newAnnouncement(entity.NewLocation(123, 0), 10)
	negative := newAnnouncement(offsetKm(paris, 1, 0), -1)

	tests := []struct {
		name          string
		deliverer     *entity.Deliverer
		announcements []*entity.Announcement
		constraints   Constraints
	}{
		{name: "nil deliverer", announcements: []*entity.Announcement{valid}},
		{name: "deliverer without location", deliverer: &entity.Deliverer{ID: uuid.New()}},
		{name: "malformed pickup", deliverer: newDeliverer(paris), announcements: []*entity.Announcement{valid, broken}},
		{name: "negative price", deliverer: newDeliverer(paris), announcements: []*entity.Announcement{negative}},
		{name: "negative distance", deliverer: newDeliverer(paris), constraints: Constraints{MaxDistanceKm: -1}},
		{name: "negative min price", deliverer: newDeliverer(paris), constraints: Constraints{MinPrice: ptr(-5.0)}},
		{name: "inverted price bounds", deliverer: newDeliverer(paris), constraints: Constraints{MinPrice: ptr(50.0), MaxPrice: ptr(10.0)}},
		{name: "inverted date range", deliverer: newDeliverer(paris), constraints: Constraints{PickupFrom: time.Now(), PickupTo: time.Now().Add(-time.Hour)}},
		{name: "unknown type", deliverer: newDeliverer(paris), constraints: Constraints{DeliveryTypes: []entity.DeliveryType{"teleport"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterCandidates(tt.deliverer, tt.announcements, tt.constraints)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, got)
		})
	}
}

func TestFilterCandidates_EveryResultWithinRadius(t *testing.T) {
	deliverer := newDeliverer(paris)
	pool := make([]*entity.Announcement, 0, 40)
	for i := range 40 {
		pool = append(pool, newAnnouncement(offsetKm(paris, float64(i*3)-60, float64(i%7)*5), 10))
	}

	got, err := FilterCandidates(deliverer, pool, Constraints{MaxDistanceKm: 30})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, c := range got {
		assert.LessOrEqual(t, Distance(paris, c.Announcement.Pickup), 30.0)
	}
}

func TestFilterDeliverers(t *testing.T) {
	announcement := newAnnouncement(paris, 25)
	announcement.PickupWindow = entity.TimeWindow{Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}

	nearby := newDeliverer(offsetKm(paris, 2, 0))
	far := newDeliverer(offsetKm(paris, 70, 0))
	pending := newDeliverer(offsetKm(paris, 1, 0))
	pending.ValidationStatus = entity.ValidationStatusPending
	lowRated := newDeliverer(offsetKm(paris, 1, 1))
	lowRated.Rating = 2.5
	noLocation := newDeliverer(paris)
	noLocation.Location = nil
	busy := newDeliverer(offsetKm(paris, 1, 2))
	busy.Availability = []entity.TimeWindow{{
		Start: time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC),
	}}

	got, err := FilterDeliverers(announcement, []*entity.Deliverer{nearby, far, pending, lowRated, noLocation, busy}, Constraints{MinRating: 3})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Same(t, nearby, got[0].Deliverer)
	assert.Same(t, announcement, got[0].Announcement)
	assert.InDelta(t, 2.0, got[0].DistanceKm, 0.01)
}

func TestFilterDeliverers_InvalidMinRating(t *testing.T) {
	_, err := FilterDeliverers(newAnnouncement(paris, 10), nil, Constraints{MinRating: 6})
	require.ErrorIs(t, err, ErrInvalidInput)
}
