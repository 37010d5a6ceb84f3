package ingest

import "errors"

// Lifecycle and configuration errors for the Ingestor.

// ErrAlreadyStarted indicates Start was called on a running Ingestor.
var ErrAlreadyStarted = errors.New("ingestor already started")

// ErrNotStarted indicates Stop was called before Start.
var ErrNotStarted = errors.New("ingestor not started")

// ErrConnRequired indicates the NATS connection is missing from the configuration.
var ErrConnRequired = errors.New("NATS connection is required")

// ErrEngineRequired indicates the triage engine is missing from the configuration.
var ErrEngineRequired = errors.New("triage engine is required")
