package matching

import (
	"math"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// Route composition defaults.
const (
	DefaultDeadlineToleranceKm = 2.0
	DefaultAverageSpeedKmh     = 40.0
	DefaultServiceTime         = 10 * time.Minute
)

// RouteOptions tunes ComposeRoute. Zero values select the defaults.
type RouteOptions struct {
	// Within this distance of the nearest eligible stop, an earlier deadline wins.
	// nil selects DefaultDeadlineToleranceKm; zero orders by distance alone.
	DeadlineToleranceKm *float64
	AverageSpeedKmh     float64
	ServiceTime         time.Duration
	// When set, every stop gets an estimated arrival time.
	DepartAt time.Time
}

func (o RouteOptions) withDefaults() RouteOptions {
	if o.DeadlineToleranceKm == nil {
		tolerance := DefaultDeadlineToleranceKm
		o.DeadlineToleranceKm = &tolerance
	}
	if o.AverageSpeedKmh == 0 {
		o.AverageSpeedKmh = DefaultAverageSpeedKmh
	}
	if o.ServiceTime == 0 {
		o.ServiceTime = DefaultServiceTime
	}

	return o
}

func (o RouteOptions) validate() error {
	if t := o.DeadlineToleranceKm; t != nil && (math.IsNaN(*t) || *t < 0) {
		return invalidf("deadline tolerance %v must be non-negative", *t)
	}
	if math.IsNaN(o.AverageSpeedKmh) || math.IsInf(o.AverageSpeedKmh, 0) || o.AverageSpeedKmh < 0 {
		return invalidf("average speed %v must be positive", o.AverageSpeedKmh)
	}
	if o.ServiceTime < 0 {
		return invalidf("service time %v must be non-negative", o.ServiceTime)
	}

	return nil
}

// ViolationReason explains why a stop was left out of the ordered route.
type ViolationReason string

const (
	// ViolationOrphanDropoff is a drop-off whose pickup is not part of the input.
	ViolationOrphanDropoff ViolationReason = "orphan_dropoff"
	// ViolationDuplicateStop repeats an (announcement, kind) pair already seen.
	ViolationDuplicateStop ViolationReason = "duplicate_stop"
)

// StopViolation is a stop reported instead of being sequenced.
type StopViolation struct {
	Stop   entity.Stop     `json:"stop"`
	Reason ViolationReason `json:"reason"`
}

// ComposedRoute is the ordered output of ComposeRoute.
type ComposedRoute struct {
	Stops            []entity.Stop
	Violations       []StopViolation
	TotalDistanceKm  float64
	TotalDurationMin float64
}

// ComposeRoute orders stops with a greedy nearest-neighbour walk from start.
// A drop-off only becomes eligible once its pickup has been placed. Among
// eligible stops lying within DeadlineToleranceKm of the nearest one, the stop
// with the earliest deadline is taken first. The result is a heuristic: neither
// shortest length nor on-time arrival is guaranteed.
func ComposeRoute(stops []entity.Stop, start entity.Location, opts RouteOptions) (*ComposedRoute, error) {
	if err := ValidateLocation("start location", start); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	for i, s := range stops {
		if !s.Kind.IsValid() {
			return nil, invalidf("stop %d has unknown kind %q", i, s.Kind)
		}
		if err := ValidateLocation("stop location", s.Location); err != nil {
			return nil, err
		}
	}

	route := &ComposedRoute{Stops: make([]entity.Stop, 0, len(stops))}
	pending, violations := partitionStops(stops)
	route.Violations = violations

	placedPickups := make(map[uuid.UUID]struct{}, len(pending))
	current := start
	clock := opts.DepartAt

	for len(pending) > 0 {
		next := pickNext(pending, current, placedPickups, *opts.DeadlineToleranceKm)
		stop := pending[next]
		pending = append(pending[:next], pending[next+1:]...)

		leg := Distance(current, stop.Location)
		travel := leg / opts.AverageSpeedKmh * 60

		stop.Sequence = len(route.Stops)
		stop.DistanceKm = leg
		if !clock.IsZero() {
			clock = clock.Add(time.Duration(travel * float64(time.Minute)))
			arrival := clock
			stop.EstimatedArrival = &arrival
			stop.Late = stop.Deadline != nil && arrival.After(*stop.Deadline)
			clock = clock.Add(opts.ServiceTime)
		}

		route.Stops = append(route.Stops, stop)
		route.TotalDistanceKm += leg
		route.TotalDurationMin += travel + opts.ServiceTime.Minutes()

		if stop.Kind == entity.StopKindPickup {
			placedPickups[stop.AnnouncementID] = struct{}{}
		}
		current = stop.Location
	}

	return route, nil
}

// partitionStops drops duplicates and orphan drop-offs into violations and
// returns the remaining stops in input order.
func partitionStops(stops []entity.Stop) ([]entity.Stop, []StopViolation) {
	hasPickup := make(map[uuid.UUID]bool, len(stops))
	for _, s := range stops {
		if s.Kind == entity.StopKindPickup {
			hasPickup[s.AnnouncementID] = true
		}
	}

	seen := make(map[entity.StopKey]struct{}, len(stops))
	valid := make([]entity.Stop, 0, len(stops))
	violations := make([]StopViolation, 0)
	for _, s := range stops {
		if _, dup := seen[s.Key()]; dup {
			violations = append(violations, StopViolation{Stop: s, Reason: ViolationDuplicateStop})
			continue
		}
		seen[s.Key()] = struct{}{}

		if s.Kind == entity.StopKindDropoff && !hasPickup[s.AnnouncementID] {
			violations = append(violations, StopViolation{Stop: s, Reason: ViolationOrphanDropoff})
			continue
		}
		valid = append(valid, s)
	}

	return valid, violations
}

// pickNext returns the index in pending of the stop to visit next.
// Every call has at least one eligible stop: a pending drop-off always has its
// pickup either placed or still pending, and pickups are always eligible.
func pickNext(pending []entity.Stop, from entity.Location, placedPickups map[uuid.UUID]struct{}, toleranceKm float64) int {
	type option struct {
		index    int
		distance float64
	}

	eligible := make([]option, 0, len(pending))
	nearest := -1
	for i, s := range pending {
		if s.Kind == entity.StopKindDropoff {
			if _, ok := placedPickups[s.AnnouncementID]; !ok {
				continue
			}
		}
		o := option{index: i, distance: Distance(from, s.Location)}
		eligible = append(eligible, o)
		if nearest < 0 || o.distance < eligible[nearest].distance {
			nearest = len(eligible) - 1
		}
	}

	best := eligible[nearest]
	for _, o := range eligible {
		if o.distance-eligible[nearest].distance >= toleranceKm {
			continue
		}
		if deadlineBefore(pending[o.index].Deadline, pending[best.index].Deadline) {
			best = o
		}
	}

	return best.index
}

// deadlineBefore reports whether a is strictly more pressing than b.
func deadlineBefore(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}

	return a.Before(*b)
}
