package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "legacy_vault"

// Validation results, used as the "result" label.
const (
	resultValid         = "valid"
	resultInvalid       = "invalid"
	resultBadRequest    = "bad_request"
	resultMisconfigured = "misconfigured"
	resultError         = "error"
)

// metrics owns a private registry so that several handlers (e.g. in tests)
// can coexist in one process.
type metrics struct {
	registry *prometheus.Registry

	validations     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "session_validations_total",
			Help:      "Session validation requests by result.",
		}, []string{"result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.validations,
		m.requestDuration,
	)

	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *metrics) observeVerdict(valid bool) {
	if valid {
		m.observeValidation(resultValid)
		return
	}
	m.observeValidation(resultInvalid)
}

func (m *metrics) observeValidation(result string) {
	m.validations.WithLabelValues(result).Inc()
}

func (m *metrics) observeRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(duration.Seconds())
}
