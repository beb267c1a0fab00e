package middleware

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	ports "blog-service/internal/domain/ports/output"
)

// Metrics records request counts and latency labelled by the matched route
// pattern, so path parameters do not explode label cardinality.
func Metrics(metrics ports.MetricsProvider, mux *http.ServeMux) func(http.Handler) http.Handler {
	var inFlight atomic.Int64

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.SetActiveConnections(int(inFlight.Add(1)))
			defer func() {
				metrics.SetActiveConnections(int(inFlight.Add(-1)))
			}()

			route := "unmatched"
			if _, pattern := mux.Handler(r); pattern != "" && pattern != "/" {
				route = pattern
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.status)
			metrics.IncrementHTTPRequests(r.Method, route, status)
			metrics.RecordHTTPRequestDuration(r.Method, route, status, time.Since(start))
		})
	}
}
