// Package triage provides a Go library for issue triage: keyword classification,
// skill matching, and deterministic assignment with capacity tracking.
//
// Triage takes free-form issue text and turns it into a routing decision. It
// classifies the text into labels, expands the labels into required skills,
// scores every registered user with spare capacity, and reserves a workload
// slot on the winner. The whole pipeline is deterministic: the same issue
// against the same roster always produces the same decision.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/medha-scaler/triage"
//
//	cfg := triage.DefaultConfig()
//	eng, err := triage.New(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = eng.Register("alice", []string{"frontend", "ui", "mobile"}, 3)
//	_ = eng.Register("bob", []string{"backend", "api", "debugging"}, 4)
//
//	decision, err := eng.Assign(ctx, triage.IssueDraft{
//	    Title:       "App crashes when opening camera",
//	    Description: "Critical failure on the mobile app",
//	})
//
// # Key Features
//
//   - Keyword Classification: Substring rules map issue text to labels, with a
//     "general" fallback so every issue gets at least one label
//   - Skill Matching: Labels expand into required skills through a configurable
//     mapping table
//   - Weighted Scoring: Skill overlap and available capacity combine into a
//     single score (default weights 0.7 / 0.3)
//   - Deterministic Selection: Ties go to the earliest registered user, so
//     results are reproducible across runs
//   - Capacity Enforcement: Users at capacity are never scored, and workload
//     reservation happens under the same lock as selection
//
// # Pipeline
//
// Every Assign call walks the same stages:
//
//	CLASSIFY → MAP SKILLS → FILTER BY CAPACITY → SCORE → RESERVE
//
// An empty or fully saturated roster is a valid terminal outcome: the decision
// carries labels but no assignee, and the error is nil.
//
// # Advanced Usage
//
// Custom components with options:
//
//	import (
//	    "github.com/medha-scaler/triage"
//	    "github.com/medha-scaler/triage/classify"
//	)
//
//	classifier := classify.NewKeyword(
//	    classify.WithRules(classify.Rule{Label: "security", Keywords: []string{"cve", "exploit"}}),
//	)
//
//	hooks := &triage.Hooks{
//	    OnAssigned: func(ctx context.Context, userID string, decision triage.Decision) error {
//	        // Notify the assignee
//	        return nil
//	    },
//	}
//
//	eng, err := triage.New(&cfg,
//	    triage.WithClassifier(classifier),
//	    triage.WithHooks(hooks),
//	)
//
// See the examples/ directory for complete working examples.
package triage
