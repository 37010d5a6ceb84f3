package testing

import (
	"testing"

	"github.com/medha-scaler/triage"
)

// NewEngine creates an engine with default configuration for testing.
//
// The engine logs through the testing.T logger, so engine diagnostics show
// up in verbose test output. Additional options are appended after the
// logger and may override it.
//
// Parameters:
//   - t: Testing context for logging and failure reporting
//   - opts: Optional engine configuration
//
// Returns:
//   - *triage.Engine: Ready-to-use engine with an empty roster
//
// Example:
//
//	func TestAssignment(t *testing.T) {
//	    eng := triagetest.NewEngine(t)
//	    _ = eng.Register("alice", []string{"frontend"}, 3)
//	    // ...
//	}
func NewEngine(t *testing.T, opts ...triage.Option) *triage.Engine {
	t.Helper()

	options := append([]triage.Option{triage.WithLogger(NewTestLogger(t))}, opts...)

	cfg := triage.DefaultConfig()
	eng, err := triage.New(&cfg, options...)
	if err != nil {
		t.Fatalf("Failed to create triage engine: %v", err)
	}

	return eng
}
