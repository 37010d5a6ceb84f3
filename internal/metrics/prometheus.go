package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/medha-scaler/triage/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Instruments are created and registered lazily on first use so that
// constructing a collector never panics on duplicate registration while
// the embedding application is still wiring things up.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Classifier metrics
	clsRuns   *prometheus.CounterVec
	clsLabels prometheus.Histogram

	// Engine metrics
	asgTotal        *prometheus.CounterVec
	asgScore        prometheus.Histogram
	asgDuration     prometheus.Histogram
	unassignable    prometheus.Counter
	reserveFailures *prometheus.CounterVec

	// Ingest metrics
	ingAccepted *prometheus.CounterVec
	ingDropped  *prometheus.CounterVec

	// Catalog metrics
	registrations *prometheus.CounterVec
	rosterSize    prometheus.Gauge
	workloadGauge *prometheus.GaugeVec
	capacityGauge *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "triage" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "triage"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.clsRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "classifier",
			Name:      "runs_total",
			Help:      "Total classification runs by result (matched|fallback).",
		}, []string{"result"})

		p.clsLabels = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "classifier",
			Name:      "labels_per_issue",
			Help:      "Number of labels produced per classification run.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6},
		})

		p.asgTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assignments_total",
			Help:      "Total completed assignments by assignee.",
		}, []string{"user"})

		p.asgScore = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assignment_score",
			Help:      "Winning combined score of completed assignments.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		})

		p.asgDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assign_duration_seconds",
			Help:      "Latency of assignment operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs .. ~260ms
		})

		p.unassignable = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "unassignable_total",
			Help:      "Issues that found no user with remaining capacity.",
		})

		p.reserveFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "reserve_failures_total",
			Help:      "Reservations rejected by the catalog (unknown_user|capacity_exceeded).",
		}, []string{"reason"})

		p.ingAccepted = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ingest",
			Name:      "submissions_total",
			Help:      "Accepted submissions by kind (issue|user).",
		}, []string{"kind"})

		p.ingDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "ingest",
			Name:      "dropped_total",
			Help:      "Submissions dropped before processing (malformed|duplicate).",
		}, []string{"kind", "reason"})

		p.registrations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "catalog",
			Name:      "registrations_total",
			Help:      "Profile registrations by kind (new|replaced).",
		}, []string{"kind"})

		p.rosterSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "catalog",
			Name:      "roster_size",
			Help:      "Current number of registered users.",
		})

		p.workloadGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "catalog",
			Name:      "user_workload",
			Help:      "Current number of issues assigned to each user.",
		}, []string{"user"})

		p.capacityGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "catalog",
			Name:      "user_capacity",
			Help:      "Maximum concurrent assignments for each user.",
		}, []string{"user"})

		p.reg.MustRegister(p.clsRuns)
		p.reg.MustRegister(p.clsLabels)
		p.reg.MustRegister(p.asgTotal)
		p.reg.MustRegister(p.asgScore)
		p.reg.MustRegister(p.asgDuration)
		p.reg.MustRegister(p.unassignable)
		p.reg.MustRegister(p.reserveFailures)
		p.reg.MustRegister(p.ingAccepted)
		p.reg.MustRegister(p.ingDropped)
		p.reg.MustRegister(p.registrations)
		p.reg.MustRegister(p.rosterSize)
		p.reg.MustRegister(p.workloadGauge)
		p.reg.MustRegister(p.capacityGauge)
	})
}

// ClassifierMetrics implementation

// RecordClassification records one classification run.
func (p *PrometheusCollector) RecordClassification(labels int, fallback bool) {
	p.ensureRegistered()
	result := "matched"
	if fallback {
		result = "fallback"
	}
	p.clsRuns.WithLabelValues(result).Inc()
	p.clsLabels.Observe(float64(labels))
}

// EngineMetrics implementation

// RecordAssignment records a completed assignment.
func (p *PrometheusCollector) RecordAssignment(userID string, score float64, duration float64) {
	p.ensureRegistered()
	p.asgTotal.WithLabelValues(userID).Inc()
	p.asgScore.Observe(score)
	p.asgDuration.Observe(duration)
}

// RecordUnassignable increments the unassignable issue counter.
func (p *PrometheusCollector) RecordUnassignable() {
	p.ensureRegistered()
	p.unassignable.Inc()
}

// RecordReserveFailure increments reserve failures for the given reason.
func (p *PrometheusCollector) RecordReserveFailure(reason string) {
	p.ensureRegistered()
	p.reserveFailures.WithLabelValues(reason).Inc()
}

// IngestMetrics implementation

// RecordIngest increments the accepted submission counter.
func (p *PrometheusCollector) RecordIngest(kind string) {
	p.ensureRegistered()
	p.ingAccepted.WithLabelValues(kind).Inc()
}

// RecordIngestDropped increments the dropped submission counter.
func (p *PrometheusCollector) RecordIngestDropped(kind string, reason string) {
	p.ensureRegistered()
	p.ingDropped.WithLabelValues(kind, reason).Inc()
}

// CatalogMetrics implementation

// RecordRegistration records a profile registration.
func (p *PrometheusCollector) RecordRegistration(replaced bool) {
	p.ensureRegistered()
	kind := "new"
	if replaced {
		kind = "replaced"
	}
	p.registrations.WithLabelValues(kind).Inc()
}

// RecordRosterSize sets the roster size gauge.
func (p *PrometheusCollector) RecordRosterSize(size int) {
	p.ensureRegistered()
	p.rosterSize.Set(float64(size))
}

// RecordWorkload sets the workload and capacity gauges for a user.
func (p *PrometheusCollector) RecordWorkload(userID string, workload, capacity int) {
	p.ensureRegistered()
	p.workloadGauge.WithLabelValues(userID).Set(float64(workload))
	p.capacityGauge.WithLabelValues(userID).Set(float64(capacity))
}
