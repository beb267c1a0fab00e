package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kgo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

type fakeWriter struct {
	messages []kgo.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kgo.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newPublisher(writer, time.Second, logger.New("test"), prometheus_metrics.NewPrometheusMetricsProvider())

	event := model.NewEvent(model.EventPostCreated, 7, map[string]any{"title": "Hello"})
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "post:7", string(msg.Key))
	assert.Equal(t, []kgo.Header{{Key: "event_type", Value: []byte("post.created")}}, msg.Headers)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "post.created", decoded["type"])
	assert.Equal(t, float64(7), decoded["entityId"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := newPublisher(writer, 0, logger.New("test"), prometheus_metrics.NewPrometheusMetricsProvider())

	err := publisher.Publish(context.Background(), model.NewEvent(model.EventUserDeleted, 3, nil))
	assert.ErrorContains(t, err, "broker unavailable")
}

func TestRequiredAcks(t *testing.T) {
	assert.Equal(t, kgo.RequireAll, requiredAcks("all"))
	assert.Equal(t, kgo.RequireNone, requiredAcks(" NONE "))
	assert.Equal(t, kgo.RequireOne, requiredAcks(""))
}
