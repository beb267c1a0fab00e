package delivery_http

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
	"blog-service/internal/infrastructure/inbound/http/middleware"
)

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

type RouterOptions struct {
	AllowedOrigins []string
	Production     bool
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRouter mounts the resource APIs, the health probe and the 404 fallback,
// and wraps them in the middleware chain.
func NewRouter(opts RouterOptions, log ports.Logger, metrics ports.MetricsProvider, apis ...RouteRegistrar) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "OK", Timestamp: time.Now().UTC()})
	})
	for _, api := range apis {
		api.RegisterRoutes(mux)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, httpx.ErrorResponse{Error: "Route not found"})
	})

	var handler http.Handler = otelhttp.NewHandler(mux, "blog-service",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			if _, pattern := mux.Handler(r); pattern != "" && pattern != "/" {
				return pattern
			}
			return r.Method + " unmatched"
		}),
	)
	handler = middleware.Recovery(log, opts.Production)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(opts.AllowedOrigins)(handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.AccessLog(log)(handler)
	handler = middleware.Metrics(metrics, mux)(handler)

	return handler
}
