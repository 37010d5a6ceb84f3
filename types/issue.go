package types

// IssueDraft represents an inbound issue before triage.
//
// Only the title and description participate in classification; both may be
// empty. Drafts carry no identity because the engine is stateless with
// respect to issues. Callers that need correlation keep their own IDs.
type IssueDraft struct {
	// Title is the issue headline.
	Title string `json:"title"`

	// Description is the free-form issue body.
	Description string `json:"description"`
}

// Decision is the outcome of triaging one issue.
//
// Labels is always populated (classification is total). Assignee is empty
// when no registered user had remaining capacity, which is a valid terminal
// outcome rather than an error.
type Decision struct {
	// Labels produced by classification, in rule order.
	Labels []string `json:"labels"`

	// Assignee is the selected user ID ("" if nobody was assignable).
	Assignee string `json:"assignee,omitempty"`

	// Score is the winning candidate's combined score (0 if unassigned).
	Score float64 `json:"score,omitempty"`
}

// Assigned reports whether the decision selected an assignee.
//
// Returns:
//   - bool: true if an assignee was chosen
func (d Decision) Assigned() bool {
	return d.Assignee != ""
}
