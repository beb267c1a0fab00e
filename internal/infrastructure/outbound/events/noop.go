package events

import (
	"context"
	"log/slog"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct {
	log ports.Logger
}

func NewNoopPublisher(log ports.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (n *NoopPublisher) Publish(ctx context.Context, event *model.Event) error {
	n.log.Debug("Event dropped, no brokers configured", slog.String("type", string(event.Type)), slog.Int64("entity_id", event.EntityID))
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}
