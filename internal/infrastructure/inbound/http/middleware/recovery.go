package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

// Recovery converts a panic into a 500. The panic value is only echoed to the
// client outside production.
func Recovery(log ports.Logger, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				log.Error("Unhandled panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.Any("panic", p),
					slog.String("stack", string(debug.Stack())))

				if rec.wroteHeader {
					return
				}
				message := "Internal server error"
				if !production {
					message = fmt.Sprint(p)
				}
				httpx.WriteJSON(rec, http.StatusInternalServerError, httpx.ErrorResponse{
					Error:   "Something went wrong!",
					Message: message,
				})
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
