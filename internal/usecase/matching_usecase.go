package usecase

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/matching"

	"github.com/google/uuid"
)

// MatchAnnouncementsInput holds the deliverer's search criteria. Zero fields apply no restriction.
type MatchAnnouncementsInput struct {
	MaxDistanceKm float64  // 0 selects the configured ceiling
	MinPrice      *float64 // Inclusive
	MaxPrice      *float64 // Inclusive
	DeliveryTypes []entity.DeliveryType
	Urgency       entity.Urgency
	PickupFrom    time.Time
	PickupTo      time.Time
	Limit         int // 0 selects the configured maximum
}

// AnnouncementMatches is the ranked list of announcements proposed to a deliverer.
type AnnouncementMatches struct {
	Matches       []matching.ScoredCandidate
	Total         int  // Candidates before the limit was applied
	RadiusKm      float64
	LocationStale bool // The deliverer's last position is older than the configured maximum age
}

// DelivererMatches is the ranked list of deliverers proposed to a client for an announcement.
type DelivererMatches struct {
	Announcement *entity.Announcement
	Matches      []matching.ScoredCandidate
	Total        int
}

// ComposeRouteInput is an ad-hoc list of stops to sequence.
type ComposeRouteInput struct {
	Start    *entity.Location // nil starts from the deliverer's last position
	Stops    []entity.Stop
	DepartAt time.Time // Zero skips arrival estimates
}

// MatchingUsecase defines the matching operations exposed to deliverers and clients.
type MatchingUsecase interface {
	// FindAnnouncementsForDeliverer filters and ranks published announcements around the deliverer.
	FindAnnouncementsForDeliverer(ctx context.Context, delivererID uuid.UUID, input *MatchAnnouncementsInput) (*AnnouncementMatches, error)

	// FindDeliverersForAnnouncement ranks approved deliverers near the pickup point of a client's announcement.
	FindDeliverersForAnnouncement(ctx context.Context, clientID, announcementID uuid.UUID) (*DelivererMatches, error)

	// ComposeRoute sequences stops for the deliverer without persisting anything.
	ComposeRoute(ctx context.Context, delivererID uuid.UUID, input *ComposeRouteInput) (*matching.ComposedRoute, error)
}
