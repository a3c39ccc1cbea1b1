package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service.
// All methods are safe to call on a nil receiver.
type Metrics struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	assignmentsCreated prometheus.Counter
	statusChanges      *prometheus.CounterVec
	messagesCreated    prometheus.Counter
}

// New registers the collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	assignmentsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignments_created_total",
		Help: "Total number of assignments created",
	})

	statusChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_status_changes_total",
		Help: "Status change requests by outcome",
	}, []string{"outcome"})

	messagesCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_messages_created_total",
		Help: "Total number of assignment messages posted",
	})

	registry.MustRegister(
		requestDuration,
		requestTotal,
		assignmentsCreated,
		statusChanges,
		messagesCreated,
		collectors.NewGoCollector(),
	)

	return &Metrics{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		assignmentsCreated: assignmentsCreated,
		statusChanges:      statusChanges,
		messagesCreated:    messagesCreated,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

func (m *Metrics) AssignmentCreated() {
	if m == nil {
		return
	}
	m.assignmentsCreated.Inc()
}

// StatusChanged records a status change attempt; found is false for unknown ids.
func (m *Metrics) StatusChanged(found bool) {
	if m == nil {
		return
	}
	outcome := "updated"
	if !found {
		outcome = "not_found"
	}
	m.statusChanges.WithLabelValues(outcome).Inc()
}

func (m *Metrics) MessageCreated() {
	if m == nil {
		return
	}
	m.messagesCreated.Inc()
}
