// Package testing provides test utilities for the triage library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for integration testing. It follows Go's convention
// of providing testing utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single in-process NATS server
//   - NewEngine: Pre-registered engine wired to the test logger
//   - NewTestLogger: Logger that writes through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    triagetest "github.com/medha-scaler/triage/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := triagetest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
