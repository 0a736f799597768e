package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ecodeli/internal/delivery/context"
	"ecodeli/internal/domain/service"
)

// publishEvent sends a matching event after the state change was committed.
// A publish failure is logged and does not undo the change.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MatchEvent) {
	event.RequestID = deliverycontext.RequestIDFrom(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.PublishMatchEvent(ctx, event); err != nil {
		deliverycontext.LoggerFrom(ctx, logger).WarnContext(ctx, "Failed to publish match event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}
