package types

// Classifier derives labels from issue text.
//
// Implementations must be deterministic and total: the same inputs always
// produce the same labels, the result is never empty, and classification
// never fails. Implementations must be safe for concurrent use.
type Classifier interface {
	// Classify returns the labels for an issue.
	//
	// Parameters:
	//   - title: Issue title (may be empty)
	//   - description: Issue description (may be empty)
	//
	// Returns:
	//   - []string: Labels in deterministic order, at least one element
	Classify(title, description string) []string
}

// SkillMapper expands labels into the skills an issue calls for.
//
// Implementations must be deterministic and must be safe for concurrent use.
type SkillMapper interface {
	// Required returns the deduplicated skill set for the given labels.
	//
	// Parameters:
	//   - labels: Labels produced by a Classifier
	//
	// Returns:
	//   - []string: Skills in deterministic order, at least one element
	Required(labels []string) []string
}

// Scorer ranks a candidate against an issue's required skills.
//
// Higher scores are better. Implementations must be deterministic and must
// be safe for concurrent use. The engine only compares scores; their
// absolute values carry no meaning outside a single scorer.
type Scorer interface {
	// Score computes the candidate's suitability.
	//
	// Parameters:
	//   - profile: Candidate snapshot (Workload < Capacity guaranteed)
	//   - required: Skills the issue calls for
	//
	// Returns:
	//   - float64: Combined suitability score
	Score(profile Profile, required []string) float64
}
