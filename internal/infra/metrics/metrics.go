// Package metrics owns the Prometheus registry: HTTP traffic, token lifecycle
// counters and database pool stats.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is registered on its own registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	tokensIssued       *prometheus.CounterVec
	tokenVerifications *prometheus.CounterVec
	loginThrottled     prometheus.Counter
}

// New creates and registers all collectors.
func New(cfg *config.Config) *Metrics {
	namespace := "storefront"
	if cfg != nil && cfg.Env.ServiceName != "" {
		namespace = metricNamespace(cfg.Env.ServiceName)
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Signed tokens issued, by kind.",
		}, []string{"kind"}),
		tokenVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_verifications_total",
			Help:      "Token verifications, by kind and result.",
		}, []string{"kind", "result"}),
		loginThrottled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_throttled_total",
			Help:      "Login attempts rejected by the attempt limiter.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.tokensIssued,
		m.tokenVerifications,
		m.loginThrottled,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WatchDB exports the connection pool stats of db, labelled db_name=name.
func (m *Metrics) WatchDB(name string, db *sql.DB) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// RequestStarted marks a request in flight and returns the function that records its outcome.
func (m *Metrics) RequestStarted() func(method, route string, status int) {
	m.httpInFlight.Inc()
	start := time.Now()

	return func(method, route string, status int) {
		m.httpInFlight.Dec()
		labels := []string{method, route, strconv.Itoa(status)}
		m.httpRequestsTotal.WithLabelValues(labels...).Inc()
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	}
}

// TokenIssued implements auth.Observer.
func (m *Metrics) TokenIssued(kind string) {
	m.tokensIssued.WithLabelValues(kind).Inc()
}

// TokenVerified implements auth.Observer.
func (m *Metrics) TokenVerified(kind string, ok bool) {
	result := "valid"
	if !ok {
		result = "rejected"
	}
	m.tokenVerifications.WithLabelValues(kind, result).Inc()
}

// LoginThrottled counts a login refused by the attempt limiter.
func (m *Metrics) LoginThrottled() {
	m.loginThrottled.Inc()
}

// metricNamespace maps a service name onto the Prometheus name charset.
func metricNamespace(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
