package matching

import (
	"math"
	"slices"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultMaxDistanceKm is the proximity ceiling used when none is given.
const DefaultMaxDistanceKm = 50.0

const maxRating = 5.0

// Constraints narrows the candidate pool. Zero values leave a criterion unset.
type Constraints struct {
	MaxDistanceKm float64                // 0 selects DefaultMaxDistanceKm.
	MinPrice      *float64               // Inclusive lower price bound.
	MaxPrice      *float64               // Inclusive upper price bound.
	DeliveryTypes []entity.DeliveryType  // Whitelist; empty accepts every type.
	Urgency       entity.Urgency         // Exact urgency; empty accepts every level.
	PickupFrom    time.Time              // Earliest requested pickup date.
	PickupTo      time.Time              // Latest requested pickup date.
	MinRating     float64                // Deliverer-side only: minimum aggregate rating.
	Excluded      map[uuid.UUID]struct{} // Announcements the deliverer already has an active application for.
}

// Radius returns the effective proximity ceiling in kilometres.
func (c Constraints) Radius() float64 {
	if c.MaxDistanceKm == 0 {
		return DefaultMaxDistanceKm
	}

	return c.MaxDistanceKm
}

// Validate rejects inconsistent or out-of-range constraints.
func (c Constraints) Validate() error {
	if math.IsNaN(c.MaxDistanceKm) || math.IsInf(c.MaxDistanceKm, 0) || c.MaxDistanceKm < 0 {
		return invalidf("max distance %v must be a non-negative number", c.MaxDistanceKm)
	}
	if c.MinPrice != nil && (math.IsNaN(*c.MinPrice) || *c.MinPrice < 0) {
		return invalidf("min price %v must be non-negative", *c.MinPrice)
	}
	if c.MaxPrice != nil && (math.IsNaN(*c.MaxPrice) || *c.MaxPrice < 0) {
		return invalidf("max price %v must be non-negative", *c.MaxPrice)
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return invalidf("min price %v exceeds max price %v", *c.MinPrice, *c.MaxPrice)
	}
	for _, t := range c.DeliveryTypes {
		if !t.IsValid() {
			return invalidf("unknown delivery type %q", t)
		}
	}
	if c.Urgency != "" && !c.Urgency.IsValid() {
		return invalidf("unknown urgency %q", c.Urgency)
	}
	if !c.PickupFrom.IsZero() && !c.PickupTo.IsZero() && c.PickupFrom.After(c.PickupTo) {
		return invalidf("pickup range starts after it ends")
	}
	if math.IsNaN(c.MinRating) || c.MinRating < 0 || c.MinRating > maxRating {
		return invalidf("min rating %v must be within [0, %v]", c.MinRating, maxRating)
	}

	return nil
}

// Candidate is a deliverer/announcement pair that passed the filter,
// annotated with the deliverer-to-pickup distance.
type Candidate struct {
	Announcement *entity.Announcement
	Deliverer    *entity.Deliverer
	DistanceKm   float64
}

// FilterCandidates keeps the published announcements the deliverer may take,
// in input order. An empty result is not an error.
func FilterCandidates(deliverer *entity.Deliverer, announcements []*entity.Announcement, c Constraints) ([]Candidate, error) {
	if deliverer == nil {
		return nil, invalidf("deliverer is required")
	}
	if deliverer.Location == nil {
		return nil, invalidf("deliverer %s has no known location", deliverer.ID)
	}
	if err := ValidateLocation("deliverer location", *deliverer.Location); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	origin := *deliverer.Location
	radius := c.Radius()
	bound := BoundAround(origin, radius)

	result := make([]Candidate, 0)
	for _, a := range announcements {
		if a == nil {
			continue
		}
		if err := validateAnnouncement(a); err != nil {
			return nil, err
		}
		if !matchesAnnouncement(a, c) || !bound.Contains(a.Pickup.Point()) {
			continue
		}

		d := Distance(origin, a.Pickup)
		if d > radius {
			continue
		}

		result = append(result, Candidate{Announcement: a, Deliverer: deliverer, DistanceKm: d})
	}

	return result, nil
}

// FilterDeliverers is the announcement-side counterpart of FilterCandidates: it keeps
// approved, available deliverers with a known position close enough to the pickup.
func FilterDeliverers(announcement *entity.Announcement, deliverers []*entity.Deliverer, c Constraints) ([]Candidate, error) {
	if announcement == nil {
		return nil, invalidf("announcement is required")
	}
	if err := validateAnnouncement(announcement); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	radius := c.Radius()
	bound := BoundAround(announcement.Pickup, radius)
	pickupDate := announcement.PickupDate()

	result := make([]Candidate, 0)
	for _, d := range deliverers {
		if d == nil || !d.IsApproved() || !d.HasLocation() {
			continue
		}
		if d.Rating < c.MinRating {
			continue
		}
		if !pickupDate.IsZero() && !d.AvailableAt(pickupDate) {
			continue
		}
		if !bound.Contains(d.Location.Point()) {
			continue
		}

		dist := Distance(*d.Location, announcement.Pickup)
		if dist > radius {
			continue
		}

		result = append(result, Candidate{Announcement: announcement, Deliverer: d, DistanceKm: dist})
	}

	return result, nil
}

func validateAnnouncement(a *entity.Announcement) error {
	if err := ValidateLocation("pickup of announcement "+a.ID.String(), a.Pickup); err != nil {
		return err
	}
	if err := ValidateLocation("delivery of announcement "+a.ID.String(), a.Delivery); err != nil {
		return err
	}
	if math.IsNaN(a.Price) || a.Price < 0 {
		return invalidf("announcement %s has a negative price", a.ID)
	}

	return nil
}

func matchesAnnouncement(a *entity.Announcement, c Constraints) bool {
	if a.Status != entity.AnnouncementStatusPublished {
		return false
	}
	if _, excluded := c.Excluded[a.ID]; excluded {
		return false
	}
	if c.MinPrice != nil && a.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && a.Price > *c.MaxPrice {
		return false
	}
	if len(c.DeliveryTypes) > 0 && !slices.Contains(c.DeliveryTypes, a.Type) {
		return false
	}
	if c.Urgency != "" && a.Urgency != c.Urgency {
		return false
	}

	// Flexible announcements fit any pickup range.
	pickup := a.PickupDate()
	if pickup.IsZero() {
		return true
	}
	if !c.PickupFrom.IsZero() && pickup.Before(c.PickupFrom) {
		return false
	}
	if !c.PickupTo.IsZero() && pickup.After(c.PickupTo) {
		return false
	}

	return true
}
