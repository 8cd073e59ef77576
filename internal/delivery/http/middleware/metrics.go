package middleware

import (
	"net/http"
	"strconv"
	"time"

	"techscene/internal/metrics"
)

// unmatchedRoute labels requests that no route handled, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request counts and latency by the ServeMux pattern that served the request.
// It must wrap the mux directly so the matched pattern is visible after the call.
func Metrics(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrap(w)
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
