package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(prometheus_metrics.UserOperationsTotal.WithLabelValues("create", "true"))
	metrics.IncrementUserOperations("create", true)
	assert.Equal(t, before+1, testutil.ToFloat64(prometheus_metrics.UserOperationsTotal.WithLabelValues("create", "true")))

	before = testutil.ToFloat64(prometheus_metrics.HTTPRequestsTotal.WithLabelValues("GET", "GET /api/posts", "200"))
	metrics.IncrementHTTPRequests("GET", "GET /api/posts", "200")
	metrics.RecordHTTPRequestDuration("GET", "GET /api/posts", "200", 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(prometheus_metrics.HTTPRequestsTotal.WithLabelValues("GET", "GET /api/posts", "200")))

	metrics.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(prometheus_metrics.ServiceHealth))
	metrics.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(prometheus_metrics.ServiceHealth))

	metrics.SetActiveConnections(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(prometheus_metrics.ActiveConnections))
}
