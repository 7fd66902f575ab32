package metrics

import (
	"time"

	apperrors "skills-tracker-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcomes
const (
	OutcomeSuccess       = "success"
	OutcomeUnauthorized  = "unauthorized"
	OutcomeNotFound      = "not_found"
	OutcomeAlreadyExists = "already_exists"
	OutcomeInvalid       = "invalid"
	OutcomeError         = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skills_tracker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skills_tracker_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skills_tracker_operations_total",
				Help: "Total number of executed operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skills_tracker_operation_duration_seconds",
				Help:    "Operation duration in seconds, authorization included",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.OperationsTotal,
		m.OperationDuration,
	)

	return m
}

// ObserveOperation records one operation execution. A nil receiver is a no-op.
func (m *Metrics) ObserveOperation(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveHTTPRequest records one served request. A nil receiver is a no-op.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Outcome classifies an operation error into a low-cardinality label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case apperrors.IsAuthorization(err), apperrors.IsAuthentication(err):
		return OutcomeUnauthorized
	case apperrors.IsNotFound(err):
		return OutcomeNotFound
	case apperrors.IsAlreadyExists(err):
		return OutcomeAlreadyExists
	case apperrors.IsValidation(err), apperrors.IsSkillSelfPrerequisite(err):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
