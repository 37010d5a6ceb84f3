package triage

import "github.com/medha-scaler/triage/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `triage` package, while
// still providing a convenient `triage.Decision`, `triage.Logger`, etc. for users.
type (
	IssueDraft = types.IssueDraft
	Decision   = types.Decision
	Profile    = types.Profile
)

// Re-export interfaces from the internal types package for convenience.
type (
	Classifier       = types.Classifier
	SkillMapper      = types.SkillMapper
	Scorer           = types.Scorer
	RosterSource     = types.RosterSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)
