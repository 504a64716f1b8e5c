package middleware

import (
	"net/http"
	"time"

	"ticketvue/internal/logging"
	"ticketvue/internal/monitoring"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// CorrelationID reuses the caller's Correlation-ID or mints one, echoes it
// on the response and seeds the request logger with it
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(logging.HeaderCorrelationID)
		if correlationID == "" {
			correlationID = logging.NewCorrelationID()
		}
		w.Header().Set(logging.HeaderCorrelationID, correlationID)

		ctx := logging.ContextWithCorrelationID(r.Context(), correlationID)
		ctx = logging.ToContext(ctx, logrus.WithField("correlation_id", correlationID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs every request through the request logger and
// counts it by route pattern
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}

		monitoring.ObserveHTTPRequest(r.Method, routeLabel(r), status)

		entry := logging.FromContext(r.Context()).WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   status,
			"bytes":    wrapped.BytesWritten(),
			"duration": time.Since(start).String(),
			"htmx":     IsHTMXRequest(r),
		})
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	})
}

// routeLabel is the matched chi pattern. Requests chi could not route share
// one label so stray paths do not grow the metric.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unmatched"
}
