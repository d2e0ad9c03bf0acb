package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "lifecare"

const (
	OutcomeHit      = "hit"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

// Metrics holds the service's prometheus collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	contentFetchTotal  *prometheus.CounterVec
	cmsRequestDuration *prometheus.HistogramVec
	bookingTotal       *prometheus.CounterVec
	httpRequestsTotal  *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		contentFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "fetch_total",
			Help:      "CMS content lookups by collection and outcome",
		}, []string{"collection", "outcome"}),
		cmsRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cms",
			Name:      "request_duration_seconds",
			Help:      "Latency of CMS HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "status"}),
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Appointment requests by result",
		}, []string{"result"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	if reg != nil {
		registerer = reg
	}

	registerer.MustRegister(m.contentFetchTotal, m.cmsRequestDuration, m.bookingTotal, m.httpRequestsTotal, m.httpLatency)

	return m
}

func (m *Metrics) ObserveContentFetch(collection, outcome string) {
	if m == nil {
		return
	}

	m.contentFetchTotal.WithLabelValues(collection, outcome).Inc()
}

func (m *Metrics) ObserveCMSRequest(collection, status string, seconds float64) {
	if m == nil {
		return
	}

	m.cmsRequestDuration.WithLabelValues(collection, status).Observe(seconds)
}

func (m *Metrics) ObserveBooking(result string) {
	if m == nil {
		return
	}

	m.bookingTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}

	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(seconds)
}
