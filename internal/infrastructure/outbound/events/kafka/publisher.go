package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kgo.Message) error
	Close() error
}

type Publisher struct {
	writer  messageWriter
	timeout time.Duration
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPublisher(cfg config.Kafka, log ports.Logger, metrics ports.MetricsProvider) *Publisher {
	w := &kgo.Writer{
		Addr:         kgo.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kgo.Hash{},
		RequiredAcks: requiredAcks(cfg.RequiredAcks),
		BatchTimeout: 50 * time.Millisecond,
	}
	log.Info("Kafka publisher configured", slog.Any("brokers", cfg.Brokers), slog.String("topic", cfg.Topic))
	return newPublisher(w, cfg.PublishTimeout, log, metrics)
}

func newPublisher(w messageWriter, timeout time.Duration, log ports.Logger, metrics ports.MetricsProvider) *Publisher {
	return &Publisher{writer: w, timeout: timeout, log: log, metrics: metrics}
}

func requiredAcks(value string) kgo.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none":
		return kgo.RequireNone
	case "all":
		return kgo.RequireAll
	default:
		return kgo.RequireOne
	}
}

// Publish writes event keyed by entity so changes to one row stay ordered on a partition.
func (p *Publisher) Publish(ctx context.Context, event *model.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.metrics.IncrementEventPublishes(string(event.Type), false)
		return fmt.Errorf("marshal event: %w", err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := kgo.Message{
		Key:   []byte(entityKey(event)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kgo.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.metrics.IncrementEventPublishes(string(event.Type), false)
		p.log.Error("Failed to publish event", slog.String("type", string(event.Type)),
			slog.Int64("entity_id", event.EntityID), slog.String("error", err.Error()))
		return fmt.Errorf("write event: %w", err)
	}

	p.metrics.IncrementEventPublishes(string(event.Type), true)
	p.log.Debug("Event published", slog.String("type", string(event.Type)), slog.Int64("entity_id", event.EntityID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func entityKey(event *model.Event) string {
	entity, _, _ := strings.Cut(string(event.Type), ".")
	return entity + ":" + strconv.FormatInt(event.EntityID, 10)
}
