package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// slowRequest is the duration above which a request is logged as slow
const slowRequest = time.Second

// MetricsMiddleware tags each request with an id and records its timing in mc.
// The metrics and health endpoints are tagged but not recorded.
func MetricsMiddleware(mc *MetricsCollector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			requestID := uuid.New().String()
			w.Header().Set(RequestIDHeader, requestID)
			if path == "/api/v1/metrics" || path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()

			wrappedWriter := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(wrappedWriter, r)

			trace := RequestTrace{
				RequestID: requestID,
				Method:    r.Method,
				Path:      path,
				Status:    wrappedWriter.statusCode,
				StartTime: start,
				Duration:  time.Since(start),
			}
			mc.RecordTrace(trace)

			if trace.Duration > slowRequest {
				zap.S().Warnw("slow request detected",
					"requestId", requestID,
					"method", r.Method,
					"path", path,
					"duration", trace.Duration,
					"status", trace.Status,
				)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
