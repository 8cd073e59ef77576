package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "techscene"

// Entity label values.
const (
	EntityEvent  = "event"
	EntityPerson = "person"
)

// Submission outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeFailed   = "failed"
	OutcomeSkipped  = "skipped"
)

// Metrics holds the application's Prometheus collectors on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	StoreReadFailures *prometheus.CounterVec
	Submissions       *prometheus.CounterVec
	FeedFallbacks     *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, along with Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		StoreReadFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_read_failures_total",
			Help:      "Listing reads against the store that failed and were served as empty.",
		}, []string{"entity"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submissions written to the moderation queue, by outcome.",
		}, []string{"entity", "outcome"}),
		FeedFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fallbacks_total",
			Help:      "Public listings served from the static demo dataset.",
		}, []string{"entity"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
	}
}

// Handler exposes the registry in the Prometheus text or OpenMetrics format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Push replaces the job's metric group on a Prometheus Pushgateway with the registry's
// current values. One-shot commands use it since nothing scrapes them.
func (m *Metrics) Push(ctx context.Context, gatewayURL, job string) error {
	if err := push.New(gatewayURL, job).Gatherer(m.reg).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
