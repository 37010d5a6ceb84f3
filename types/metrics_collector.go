package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	ClassifierMetrics
	EngineMetrics
	CatalogMetrics
	IngestMetrics
}

// ClassifierMetrics defines metrics for classification operations.
type ClassifierMetrics interface {
	// RecordClassification records one classification run.
	//
	// Parameters:
	//   - labels: Number of labels produced
	//   - fallback: true if the run produced only the fallback label
	RecordClassification(labels int, fallback bool)
}

// EngineMetrics defines metrics for assignment operations.
type EngineMetrics interface {
	// RecordAssignment records a completed assignment.
	//
	// Parameters:
	//   - userID: The selected assignee
	//   - score: The winning combined score
	//   - duration: Time taken in seconds
	RecordAssignment(userID string, score float64, duration float64)

	// RecordUnassignable records an issue that found no assignable user.
	RecordUnassignable()

	// RecordReserveFailure records a reservation rejected by the catalog.
	//
	// Parameters:
	//   - reason: Failure reason ("unknown_user", "capacity_exceeded")
	RecordReserveFailure(reason string)
}

// IngestMetrics defines metrics for the NATS ingest bridge.
type IngestMetrics interface {
	// RecordIngest records one accepted submission.
	//
	// Parameters:
	//   - kind: Submission kind ("issue", "user")
	RecordIngest(kind string)

	// RecordIngestDropped records a submission dropped before processing.
	//
	// Parameters:
	//   - kind: Submission kind ("issue", "user")
	//   - reason: Drop reason ("malformed", "duplicate")
	RecordIngestDropped(kind string, reason string)
}

// CatalogMetrics defines metrics for the user catalog.
type CatalogMetrics interface {
	// RecordRegistration records a profile registration.
	//
	// Parameters:
	//   - replaced: true if an existing profile was replaced
	RecordRegistration(replaced bool)

	// RecordRosterSize sets the current number of registered users (gauge metric).
	//
	// Parameters:
	//   - size: Current roster size
	RecordRosterSize(size int)

	// RecordWorkload sets a user's current workload utilization (gauge metric).
	//
	// Parameters:
	//   - userID: The user whose workload changed
	//   - workload: Current number of assigned issues
	//   - capacity: Maximum concurrent assignments
	RecordWorkload(userID string, workload, capacity int)
}
