// Package skillmap expands issue labels into required skill sets.
//
// The mapping is a plain label-to-skills table. Labels outside the table
// contribute nothing; when no label maps to any skill the mapper falls
// back to FallbackSkill so scoring always has something to compare
// against. Custom tables can be supplied with WithTable, or a custom
// mapper can implement types.SkillMapper directly.
package skillmap

import "github.com/medha-scaler/triage/types"

// FallbackSkill is required when no label maps to any skill.
const FallbackSkill = "general"

// DefaultTable returns the built-in label-to-skills table.
//
// The returned map is a fresh copy; callers may modify it freely.
//
// Returns:
//   - map[string][]string: Mapping from label to the skills it demands
func DefaultTable() map[string][]string {
	return map[string][]string{
		"frontend":    {"frontend", "ui"},
		"backend":     {"backend", "api"},
		"mobile":      {"mobile", "android", "ios"},
		"bug":         {"testing", "debugging"},
		"enhancement": {"development"},
		"urgent":      {"senior"},
	}
}

// Mapper implements table-driven skill mapping.
type Mapper struct {
	table map[string][]string
}

var _ types.SkillMapper = (*Mapper)(nil)

// Option configures a Mapper.
type Option func(*Mapper)

// WithTable replaces the default mapping table.
//
// An empty table is legal and makes every expansion fall back to
// FallbackSkill.
func WithTable(table map[string][]string) Option {
	return func(m *Mapper) {
		m.table = table
	}
}

// New creates a new skill mapper.
//
// Without options the mapper uses DefaultTable.
//
// Parameters:
//   - opts: Optional configuration (WithTable)
//
// Returns:
//   - *Mapper: Initialized mapper ready for concurrent use
//
// Example:
//
//	mapper := skillmap.New()
//	skills := mapper.Required([]string{"bug", "urgent", "mobile"})
//	// skills: ["testing", "debugging", "senior", "mobile", "android", "ios"]
func New(opts ...Option) *Mapper {
	m := &Mapper{table: DefaultTable()}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.table == nil {
		m.table = DefaultTable()
	}

	return m
}

// Required returns the union of skills demanded by the given labels.
//
// Skills keep first-seen order across the label slice and duplicates
// collapse, so the result is deterministic for a fixed label order.
//
// Parameters:
//   - labels: Labels produced by a classifier
//
// Returns:
//   - []string: Deduplicated skills, never empty
func (m *Mapper) Required(labels []string) []string {
	skills := make([]string, 0, len(labels)*2)
	seen := make(map[string]struct{}, len(labels)*2)
	for _, label := range labels {
		for _, skill := range m.table[label] {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
		}
	}

	if len(skills) == 0 {
		return []string{FallbackSkill}
	}

	return skills
}
