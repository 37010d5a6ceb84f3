package ingest

import (
	"github.com/nats-io/nats.go"

	"github.com/medha-scaler/triage"
	"github.com/medha-scaler/triage/internal/logger"
	"github.com/medha-scaler/triage/internal/metrics"
	"github.com/medha-scaler/triage/types"
)

// Default configuration values for the Ingestor.
const (
	// DefaultSubjectPrefix is the default root token of all ingest subjects.
	DefaultSubjectPrefix = "triage"

	// DefaultQueueGroup is the default queue group name. All ingestors in
	// the same group share the submission stream, so each message is
	// handled by exactly one instance.
	DefaultQueueGroup = "triage-workers"
)

// Config configures the Ingestor.
//
// Required fields:
//   - Conn
//   - Engine
//
// Optional fields are documented inline below. Zero values are replaced by
// project defaults via applyDefaults().
type Config struct {
	// Conn is the NATS connection used for subscriptions and publishes.
	Conn *nats.Conn

	// Engine receives registrations and assignment requests.
	Engine *triage.Engine

	// SubjectPrefix is the root token of all ingest subjects
	// (default "triage").
	SubjectPrefix string

	// QueueGroup names the queue group for submission subscriptions
	// (default "triage-workers").
	QueueGroup string

	// Logger receives ingest diagnostics (default nop).
	Logger types.Logger

	// Metrics receives ingest counters (default nop).
	Metrics types.MetricsCollector
}

// applyDefaults fills unset optional fields with project defaults.
func (cfg *Config) applyDefaults() {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = DefaultSubjectPrefix
	}
	if cfg.QueueGroup == "" {
		cfg.QueueGroup = DefaultQueueGroup
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNop()
	}
}

// validate checks that the required fields are present.
func (cfg *Config) validate() error {
	if cfg.Conn == nil {
		return ErrConnRequired
	}
	if cfg.Engine == nil {
		return ErrEngineRequired
	}

	return nil
}
