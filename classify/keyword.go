package classify

import (
	"strings"

	"github.com/medha-scaler/triage/types"
)

// FallbackLabel is returned when no rule matches the issue text.
const FallbackLabel = "general"

// Rule associates a label with the keywords that trigger it.
//
// A rule matches when any of its keywords occurs as a substring of the
// lowercased issue text. Keywords are normalized to lowercase at
// construction time.
type Rule struct {
	// Label is contributed to the result when the rule matches.
	Label string

	// Keywords trigger the rule; any single match suffices.
	Keywords []string
}

// DefaultRules returns the built-in classification rule table.
//
// The returned slice is a fresh copy; callers may modify it freely.
// Rule order is significant and determines label order in results.
//
// Returns:
//   - []Rule: Built-in rules in evaluation order
func DefaultRules() []Rule {
	return []Rule{
		{Label: "bug", Keywords: []string{"crash", "error", "bug", "broken", "fails", "not working", "issue"}},
		{Label: "urgent", Keywords: []string{"urgent", "critical", "asap", "immediately", "crash", "down"}},
		{Label: "enhancement", Keywords: []string{"add", "new", "feature", "implement", "support", "create"}},
		{Label: "mobile", Keywords: []string{"mobile", "android", "ios", "app"}},
		{Label: "frontend", Keywords: []string{"frontend", "ui", "interface", "design"}},
		{Label: "backend", Keywords: []string{"backend", "api", "server", "database"}},
	}
}

// Keyword implements keyword-based issue classification.
type Keyword struct {
	rules []Rule
}

var _ types.Classifier = (*Keyword)(nil)

// Option configures a Keyword classifier.
type Option func(*Keyword)

// WithRules replaces the default rule table.
//
// Rules are evaluated in the given order. An empty table is legal and
// makes every classification fall back to FallbackLabel.
func WithRules(rules ...Rule) Option {
	return func(k *Keyword) {
		k.rules = rules
	}
}

// NewKeyword creates a new keyword classifier.
//
// Without options the classifier uses DefaultRules. Keywords are
// normalized to lowercase and empty keywords are dropped.
//
// Parameters:
//   - opts: Optional configuration (WithRules)
//
// Returns:
//   - *Keyword: Initialized classifier ready for concurrent use
//
// Example:
//
//	clf := classify.NewKeyword()
//	labels := clf.Classify("App crashes on login", "Happens on Android 14")
//	// labels: ["bug", "urgent", "mobile"]
func NewKeyword(opts ...Option) *Keyword {
	k := &Keyword{rules: DefaultRules()}

	for _, opt := range opts {
		if opt != nil {
			opt(k)
		}
	}

	k.normalizeRules()

	return k
}

// Classify returns the labels matching the issue text.
//
// The algorithm:
//  1. Lowercase title and description joined by a single space
//  2. Evaluate rules in table order; any keyword substring match
//     contributes the rule's label once
//  3. Fall back to FallbackLabel when nothing matched
//
// Parameters:
//   - title: Issue title (may be empty)
//   - description: Issue description (may be empty)
//
// Returns:
//   - []string: Labels in rule order, never empty
func (k *Keyword) Classify(title, description string) []string {
	haystack := strings.ToLower(title + " " + description)

	labels := make([]string, 0, len(k.rules))
	seen := make(map[string]struct{}, len(k.rules))
	for _, rule := range k.rules {
		if _, dup := seen[rule.Label]; dup {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(haystack, kw) {
				seen[rule.Label] = struct{}{}
				labels = append(labels, rule.Label)

				break
			}
		}
	}

	if len(labels) == 0 {
		return []string{FallbackLabel}
	}

	return labels
}

// Rules returns a copy of the active rule table.
//
// Returns:
//   - []Rule: Rules in evaluation order
func (k *Keyword) Rules() []Rule {
	rules := make([]Rule, len(k.rules))
	copy(rules, k.rules)

	return rules
}

// normalizeRules lowercases keywords and drops empty entries.
func (k *Keyword) normalizeRules() {
	normalized := make([]Rule, 0, len(k.rules))
	for _, rule := range k.rules {
		if rule.Label == "" {
			continue
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			keywords = append(keywords, strings.ToLower(kw))
		}
		normalized = append(normalized, Rule{Label: rule.Label, Keywords: keywords})
	}
	k.rules = normalized
}
