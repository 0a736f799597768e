package matching

import (
	"testing"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = entity.NewLocation(0, 0)

func stop(id uuid.UUID, kind entity.StopKind, at entity.Location) entity.Stop {
	return entity.Stop{AnnouncementID: id, Kind: kind, Location: at}
}

func withDeadline(s entity.Stop, deadline time.Time) entity.Stop {
	s.Deadline = &deadline

	return s
}

func stopKeys(stops []entity.Stop) []entity.StopKey {
	keys := make([]entity.StopKey, 0, len(stops))
	for _, s := range stops {
		keys = append(keys, s.Key())
	}

	return keys
}

func TestComposeRoute_PickupBeforeDropoff(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	p1 := stop(a, entity.StopKindPickup, offsetKm(origin, 0, 1))
	d1 := stop(a, entity.StopKindDropoff, offsetKm(origin, 0.5, 0))
	p2 := stop(b, entity.StopKindPickup, offsetKm(origin, 0, -3))

	route, err := ComposeRoute([]entity.Stop{d1, p2, p1}, origin, RouteOptions{})
	require.NoError(t, err)

	assert.Empty(t, route.Violations)
	assert.Equal(t, []entity.StopKey{p1.Key(), d1.Key(), p2.Key()}, stopKeys(route.Stops))
}

func TestComposeRoute_NearestNeighbourWithoutConstraints(t *testing.T) {
	stops := []entity.Stop{
		stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, 9)),
		stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, 3)),
		stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, -4)),
		stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, 6)),
	}

	route, err := ComposeRoute(stops, origin, RouteOptions{DeadlineToleranceKm: ptr(0.001)})
	require.NoError(t, err)
	require.Len(t, route.Stops, len(stops))

	current := origin
	remaining := append([]entity.Stop(nil), stops...)
	for _, placed := range route.Stops {
		for _, other := range remaining {
			assert.LessOrEqual(t, Distance(current, placed.Location), Distance(current, other.Location)+1e-9)
		}
		for i, r := range remaining {
			if r.Key() == placed.Key() {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
		current = placed.Location
	}
}

func TestComposeRoute_DeadlineWinsWithinTolerance(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	nearest := stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, 1))
	pressing := withDeadline(stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, -1.5)), now.Add(time.Hour))
	remote := withDeadline(stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 8, 0)), now.Add(10*time.Minute))

	route, err := ComposeRoute([]entity.Stop{nearest, pressing, remote}, origin, RouteOptions{DeadlineToleranceKm: ptr(2.0)})
	require.NoError(t, err)

	require.Len(t, route.Stops, 3)
	assert.Equal(t, pressing.Key(), route.Stops[0].Key(), "earlier deadline within tolerance goes first")
	assert.Equal(t, nearest.Key(), route.Stops[1].Key())
	assert.Equal(t, remote.Key(), route.Stops[2].Key(), "a deadline far outside the tolerance does not jump the queue")
}

func TestComposeRoute_ZeroToleranceIsPureNearestNeighbour(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	nearest := stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, 1))
	pressing := withDeadline(stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 0, -1.2)), now.Add(10*time.Minute))
	stops := []entity.Stop{nearest, pressing}

	route, err := ComposeRoute(stops, origin, RouteOptions{DeadlineToleranceKm: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, []entity.StopKey{nearest.Key(), pressing.Key()}, stopKeys(route.Stops))

	route, err = ComposeRoute(stops, origin, RouteOptions{})
	require.NoError(t, err)
	assert.Equal(t, []entity.StopKey{pressing.Key(), nearest.Key()}, stopKeys(route.Stops), "nil tolerance uses the default")
}

func TestComposeRoute_ReportsInvalidStops(t *testing.T) {
	a, orphan := uuid.New(), uuid.New()
	p := stop(a, entity.StopKindPickup, offsetKm(origin, 1, 0))
	d := stop(a, entity.StopKindDropoff, offsetKm(origin, 2, 0))
	dup := stop(a, entity.StopKindPickup, offsetKm(origin, 5, 5))
	lonely := stop(orphan, entity.StopKindDropoff, offsetKm(origin, 0.1, 0))

	route, err := ComposeRoute([]entity.Stop{p, lonely, d, dup}, origin, RouteOptions{})
	require.NoError(t, err)

	assert.Equal(t, []entity.StopKey{p.Key(), d.Key()}, stopKeys(route.Stops))
	require.Len(t, route.Violations, 2)
	assert.Equal(t, ViolationOrphanDropoff, route.Violations[0].Reason)
	assert.Equal(t, orphan, route.Violations[0].Stop.AnnouncementID)
	assert.Equal(t, ViolationDuplicateStop, route.Violations[1].Reason)
	assert.Equal(t, dup.Location, route.Violations[1].Stop.Location)
}

func TestComposeRoute_SequenceAndTotals(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	stops := []entity.Stop{
		stop(a, entity.StopKindPickup, offsetKm(origin, 0, 2)),
		stop(a, entity.StopKindDropoff, offsetKm(origin, 0, 6)),
		stop(b, entity.StopKindPickup, offsetKm(origin, 0, 4)),
		stop(b, entity.StopKindDropoff, offsetKm(origin, 0, 10)),
	}

	route, err := ComposeRoute(stops, origin, RouteOptions{AverageSpeedKmh: 60, ServiceTime: 5 * time.Minute})
	require.NoError(t, err)
	require.Len(t, route.Stops, 4)

	legs := 0.0
	for i, s := range route.Stops {
		assert.Equal(t, i, s.Sequence)
		legs += s.DistanceKm
	}
	assert.InDelta(t, 10.0, route.TotalDistanceKm, 1e-6)
	assert.InDelta(t, legs, route.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 10.0+4*5, route.TotalDurationMin, 1e-6)
}

func TestComposeRoute_ArrivalEstimates(t *testing.T) {
	depart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := uuid.New()
	pickup := stop(a, entity.StopKindPickup, offsetKm(origin, 0, 10))
	dropoff := withDeadline(stop(a, entity.StopKindDropoff, offsetKm(origin, 0, 20)), depart.Add(20*time.Minute))

	route, err := ComposeRoute([]entity.Stop{pickup, dropoff}, origin, RouteOptions{
		AverageSpeedKmh: 60,
		ServiceTime:     10 * time.Minute,
		DepartAt:        depart,
	})
	require.NoError(t, err)
	require.Len(t, route.Stops, 2)

	require.NotNil(t, route.Stops[0].EstimatedArrival)
	assert.WithinDuration(t, depart.Add(10*time.Minute), *route.Stops[0].EstimatedArrival, time.Second)
	assert.False(t, route.Stops[0].Late)

	require.NotNil(t, route.Stops[1].EstimatedArrival)
	assert.WithinDuration(t, depart.Add(30*time.Minute), *route.Stops[1].EstimatedArrival, time.Second)
	assert.True(t, route.Stops[1].Late)
}

func TestComposeRoute_NoDepartureLeavesArrivalUnset(t *testing.T) {
	route, err := ComposeRoute([]entity.Stop{stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 1, 0))}, origin, RouteOptions{})
	require.NoError(t, err)

	require.Len(t, route.Stops, 1)
	assert.Nil(t, route.Stops[0].EstimatedArrival)
}

func TestComposeRoute_EmptyInput(t *testing.T) {
	route, err := ComposeRoute(nil, origin, RouteOptions{})
	require.NoError(t, err)

	assert.Empty(t, route.Stops)
	assert.Empty(t, route.Violations)
	assert.Zero(t, route.TotalDistanceKm)
}

func TestComposeRoute_InvalidInput(t *testing.T) {
	good := stop(uuid.New(), entity.StopKindPickup, offsetKm(origin, 1, 0))

	tests := []struct {
		name  string
		stops []entity.Stop
		start entity.Location
		opts  RouteOptions
	}{
		{name: "bad start", stops: []entity.Stop{good}, start: entity.NewLocation(-91, 0)},
		{name: "bad stop location", stops: []entity.Stop{stop(uuid.New(), entity.StopKindPickup, entity.NewLocation(0, 200))}, start: origin},
		{name: "unknown kind", stops: []entity.Stop{stop(uuid.New(), "detour", origin)}, start: origin},
		{name: "negative speed", stops: []entity.Stop{good}, start: origin, opts: RouteOptions{AverageSpeedKmh: -5}},
		{name: "negative tolerance", stops: []entity.Stop{good}, start: origin, opts: RouteOptions{DeadlineToleranceKm: ptr(-1.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := ComposeRoute(tt.stops, tt.start, tt.opts)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, route)
		})
	}
}
