// Package types provides core type definitions and interfaces for the triage library.
//
// This package contains shared types that are used across multiple packages in the
// triage library. By keeping these types in a separate package, we avoid import cycles
// between the main triage package and its internal implementations.
//
// Key types:
//   - IssueDraft: Inbound issue awaiting triage
//   - Decision: Outcome of a triage run
//   - Profile: Registered user with skills, capacity, and workload
//   - Classifier, SkillMapper, Scorer: Pipeline stage interfaces
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
