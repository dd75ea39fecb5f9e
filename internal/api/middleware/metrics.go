package middleware

import (
	"net/http"
	"time"

	"github.com/studynest/studyspaces-backend/internal/infrastructure/observability"
)

// MetricsMiddleware records request counts and latencies per route pattern.
func MetricsMiddleware(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(rw, r)

			// Use the route pattern instead of the raw path to avoid
			// high cardinality from path parameters.
			route := r.Pattern
			if route == "" {
				route = r.URL.Path
			}
			metrics.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *metricsResponseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
