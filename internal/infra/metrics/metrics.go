// Package metrics owns the Prometheus registry and the collectors used by the
// HTTP layer, the proximity search engines and the shop write path.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shopradar"

// Metrics groups every collector the service exports. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	registry *prometheus.Registry

	searchDuration   *prometheus.HistogramVec
	searchCandidates *prometheus.HistogramVec
	searchResults    *prometheus.HistogramVec
	shopWrites       *prometheus.CounterVec
	shopEvents       *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New builds a private registry with the Go and process collectors plus the
// service collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Proximity search latency by engine.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
		searchCandidates: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "candidates",
			Help:      "Shops whose exact distance was computed per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"engine"}),
		searchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "results",
			Help:      "Shops returned per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"engine"}),
		shopWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shop",
			Name:      "writes_total",
			Help:      "Shop create/update/delete attempts by outcome.",
		}, []string{"operation", "outcome"}),
		shopEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shop",
			Name:      "events_applied_total",
			Help:      "Shop change events replayed into the search index by outcome.",
		}, []string{"type", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(
		m.searchDuration,
		m.searchCandidates,
		m.searchResults,
		m.shopWrites,
		m.shopEvents,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterDBStats exports the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB) error {
	if m == nil {
		return nil
	}

	return m.registry.Register(collectors.NewDBStatsCollector(db, namespace))
}

// Handler serves the exposition format for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// ObserveSearch records one proximity search.
func (m *Metrics) ObserveSearch(engine string, elapsed time.Duration, candidates, results int) {
	if m == nil {
		return
	}

	m.searchDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
	m.searchCandidates.WithLabelValues(engine).Observe(float64(candidates))
	m.searchResults.WithLabelValues(engine).Observe(float64(results))
}

// ObserveShopWrite counts one owner-scoped shop write.
func (m *Metrics) ObserveShopWrite(operation, outcome string) {
	if m == nil {
		return
	}

	m.shopWrites.WithLabelValues(operation, outcome).Inc()
}

// ObserveShopEvent counts one consumed shop change event.
func (m *Metrics) ObserveShopEvent(eventType, outcome string) {
	if m == nil {
		return
	}

	m.shopEvents.WithLabelValues(eventType, outcome).Inc()
}

// ObserveHTTP records one served request. route is the registered path
// pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
