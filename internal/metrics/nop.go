// Package metrics provides metrics collector implementations for the triage library.
package metrics

import "github.com/medha-scaler/triage/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	eng, err := triage.New(cfg, triage.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ClassifierMetrics implementation

// RecordClassification discards the classification metric.
func (n *NopMetrics) RecordClassification(_ /* labels */ int, _ /* fallback */ bool) {
	// No-op
}

// EngineMetrics implementation

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* userID */ string, _ /* score */, _ /* duration */ float64) {
	// No-op
}

// RecordUnassignable discards the unassignable counter.
func (n *NopMetrics) RecordUnassignable() {
	// No-op
}

// RecordReserveFailure discards the reserve failure metric.
func (n *NopMetrics) RecordReserveFailure(_ /* reason */ string) {
	// No-op
}

// IngestMetrics implementation

// RecordIngest discards the ingest counter.
func (n *NopMetrics) RecordIngest(_ /* kind */ string) {
	// No-op
}

// RecordIngestDropped discards the dropped submission counter.
func (n *NopMetrics) RecordIngestDropped(_ /* kind */ string, _ /* reason */ string) {
	// No-op
}

// CatalogMetrics implementation

// RecordRegistration discards the registration metric.
func (n *NopMetrics) RecordRegistration(_ /* replaced */ bool) {
	// No-op
}

// RecordRosterSize discards the roster size metric.
func (n *NopMetrics) RecordRosterSize(_ /* size */ int) {
	// No-op
}

// RecordWorkload discards the workload metric.
func (n *NopMetrics) RecordWorkload(_ /* userID */ string, _ /* workload */, _ /* capacity */ int) {
	// No-op
}
