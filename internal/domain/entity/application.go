package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the state of a deliverer's application to an announcement.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the application was decided.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Application links a deliverer to an announcement they offered to fulfil.
// At most one application per announcement may be accepted.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	AnnouncementID uuid.UUID         `json:"announcement_id"`
	DelivererID    uuid.UUID         `json:"deliverer_id"`
	ProposedPrice  float64           `json:"proposed_price"` // Price the deliverer asks, defaults to the announcement price.
	Message        string            `json:"message,omitempty"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// IsActive reports whether the application still blocks a new one for the same pair.
func (a *Application) IsActive() bool {
	return a.Status == ApplicationStatusPending || a.Status == ApplicationStatusAccepted
}
