package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	AssignmentsCreated     *prometheus.CounterVec
	AssignmentsTerminated  prometheus.Counter
	ScheduledActivations   *prometheus.CounterVec
	ReconciliationFailures *prometheus.CounterVec
	DriftCorrections       prometheus.Counter
	SweepDuration          prometheus.Histogram

	// Database metrics
	DBConnections prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		AssignmentsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zone_assignments_created_total",
				Help: "Total number of zone assignments created",
			},
			[]string{"target", "kind"}, // target: agent/team, kind: immediate/scheduled
		),
		AssignmentsTerminated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "zone_assignments_terminated_total",
			Help: "Total number of zone assignments terminated or cancelled",
		}),
		ScheduledActivations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduled_activations_total",
				Help: "Total number of scheduled assignment activations",
			},
			[]string{"status"}, // success, failed
		),
		ReconciliationFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_failures_total",
				Help: "Downstream status-propagation failures during reconciliation",
			},
			[]string{"entity"}, // agent, team, zone
		),
		DriftCorrections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "drift_corrections_total",
			Help: "Stored statuses overwritten by resync because they diverged from derived state",
		}),
		SweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "activation_sweep_duration_seconds",
			Help:    "Duration of activation sweep runs",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),

		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/zones/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordAssignmentCreated increments the assignments created counter
func (m *Metrics) RecordAssignmentCreated(target, kind string) {
	m.AssignmentsCreated.WithLabelValues(target, kind).Inc()
}

// RecordAssignmentTerminated increments the assignments terminated counter
func (m *Metrics) RecordAssignmentTerminated() {
	m.AssignmentsTerminated.Inc()
}

// RecordActivation increments the scheduled activation counter
func (m *Metrics) RecordActivation(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.ScheduledActivations.WithLabelValues(status).Inc()
}

// RecordReconciliationFailure increments the reconciliation failure counter
func (m *Metrics) RecordReconciliationFailure(entity string) {
	m.ReconciliationFailures.WithLabelValues(entity).Inc()
}

// RecordDriftCorrection increments the drift corrections counter
func (m *Metrics) RecordDriftCorrection() {
	m.DriftCorrections.Inc()
}

// ObserveSweepDuration records the duration of an activation sweep
func (m *Metrics) ObserveSweepDuration(d time.Duration) {
	m.SweepDuration.Observe(d.Seconds())
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}
