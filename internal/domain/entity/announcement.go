package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementStatus is the lifecycle state of a delivery announcement.
type AnnouncementStatus string

const (
	AnnouncementStatusDraft      AnnouncementStatus = "draft"
	AnnouncementStatusPublished  AnnouncementStatus = "published"
	AnnouncementStatusMatched    AnnouncementStatus = "matched"
	AnnouncementStatusInProgress AnnouncementStatus = "in_progress"
	AnnouncementStatusCompleted  AnnouncementStatus = "completed"
	AnnouncementStatusCancelled  AnnouncementStatus = "cancelled"
	AnnouncementStatusExpired    AnnouncementStatus = "expired"
)

var announcementTransitions = map[AnnouncementStatus][]AnnouncementStatus{
	AnnouncementStatusDraft:      {AnnouncementStatusPublished, AnnouncementStatusCancelled},
	AnnouncementStatusPublished:  {AnnouncementStatusMatched, AnnouncementStatusCancelled, AnnouncementStatusExpired},
	AnnouncementStatusMatched:    {AnnouncementStatusInProgress, AnnouncementStatusPublished, AnnouncementStatusCancelled},
	AnnouncementStatusInProgress: {AnnouncementStatusCompleted, AnnouncementStatusCancelled},
	AnnouncementStatusExpired:    {AnnouncementStatusPublished},
}

// IsValid checks if the status is a known value.
func (s AnnouncementStatus) IsValid() bool {
	switch s {
	case AnnouncementStatusDraft, AnnouncementStatusPublished, AnnouncementStatusMatched,
		AnnouncementStatusInProgress, AnnouncementStatusCompleted, AnnouncementStatusCancelled,
		AnnouncementStatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the announcement can no longer change.
func (s AnnouncementStatus) IsTerminal() bool {
	return s == AnnouncementStatusCompleted || s == AnnouncementStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s AnnouncementStatus) CanTransitionTo(next AnnouncementStatus) bool {
	for _, allowed := range announcementTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// DeliveryType is the kind of service an announcement asks for.
type DeliveryType string

const (
	DeliveryTypePackage               DeliveryType = "package_delivery"
	DeliveryTypePersonTransport       DeliveryType = "person_transport"
	DeliveryTypeAirportTransfer       DeliveryType = "airport_transfer"
	DeliveryTypeShopping              DeliveryType = "shopping"
	DeliveryTypeInternationalPurchase DeliveryType = "international_purchase"
	DeliveryTypePetSitting            DeliveryType = "pet_sitting"
	DeliveryTypeCartDrop              DeliveryType = "cart_drop"
)

// IsValid checks if the delivery type is a known value.
func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryTypePackage, DeliveryTypePersonTransport, DeliveryTypeAirportTransfer,
		DeliveryTypeShopping, DeliveryTypeInternationalPurchase, DeliveryTypePetSitting,
		DeliveryTypeCartDrop:
		return true
	default:
		return false
	}
}

// Urgency expresses how soon the client needs the delivery.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// IsValid checks if the urgency is a known value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
		return true
	default:
		return false
	}
}

// TimeWindow is a requested time range. A zero Start means no constraint.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsZero reports whether the window carries no constraint.
func (w TimeWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Contains reports whether t falls inside the window. An open End is unbounded.
func (w TimeWindow) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}

	return true
}

// Cargo describes what has to be carried. Zero values mean "not declared".
type Cargo struct {
	WeightKg     float64 `json:"weight_kg"`
	LengthCm     float64 `json:"length_cm"`
	WidthCm      float64 `json:"width_cm"`
	HeightCm     float64 `json:"height_cm"`
	Fragile      bool    `json:"fragile"`
	NeedsCooling bool    `json:"needs_cooling"`
}

// VolumeM3 returns the declared volume in cubic metres, or 0 when any dimension is missing.
func (c Cargo) VolumeM3() float64 {
	if c.LengthCm <= 0 || c.WidthCm <= 0 || c.HeightCm <= 0 {
		return 0
	}

	return c.LengthCm * c.WidthCm * c.HeightCm / 1_000_000
}

// Announcement is a client's published delivery request.
type Announcement struct {
	ID             uuid.UUID          `json:"id"`
	ClientID       uuid.UUID          `json:"client_id"`      // Account that published the announcement.
	Title          string             `json:"title"`
	Type           DeliveryType       `json:"type"`
	Status         AnnouncementStatus `json:"status"`
	Pickup         Location           `json:"pickup"`
	Delivery       Location           `json:"delivery"`
	PickupWindow   TimeWindow         `json:"pickup_window"`   // Requested pickup time range.
	DeliveryWindow TimeWindow         `json:"delivery_window"` // Requested drop-off time range.
	Price          float64            `json:"price"`           // Declared price in euros.
	Cargo          Cargo              `json:"cargo"`
	Urgency        Urgency            `json:"urgency"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// PickupDate returns the requested pickup time, zero when flexible.
func (a *Announcement) PickupDate() time.Time {
	return a.PickupWindow.Start
}

// DeliveryDeadline returns the latest requested drop-off time, zero when flexible.
func (a *Announcement) DeliveryDeadline() time.Time {
	return a.DeliveryWindow.End
}

// IsOpen reports whether deliverers may still apply.
func (a *Announcement) IsOpen() bool {
	return a.Status == AnnouncementStatusPublished
}
