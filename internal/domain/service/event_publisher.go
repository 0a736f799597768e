package service

import (
	"context"
	"time"
)

// MatchEventType names the marketplace change an event reports.
type MatchEventType string

const (
	MatchEventApplicationCreated  MatchEventType = "application.created"
	MatchEventApplicationAccepted MatchEventType = "application.accepted"
	MatchEventApplicationRejected MatchEventType = "application.rejected"
	MatchEventRoutePlanned        MatchEventType = "route.planned"
)

// MatchEvent is published after a matching decision so that notification
// and tracking services can react without polling.
type MatchEvent struct {
	RequestID      string         `json:"request_id,omitempty"` // For distributed tracing
	Type           MatchEventType `json:"type"`
	AnnouncementID string         `json:"announcement_id,omitempty"`
	ApplicationID  string         `json:"application_id,omitempty"`
	RouteID        string         `json:"route_id,omitempty"`
	DelivererID    string         `json:"deliverer_id"`
	ClientID       string         `json:"client_id,omitempty"`
	PickupAt       *time.Time     `json:"pickup_at,omitempty"` // Requested pickup of the announcement, nil when flexible
	OccurredAt     time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a matching event for async processing
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
