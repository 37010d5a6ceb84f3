// Package classify provides built-in issue classifier implementations.
//
// Classifiers derive labels from issue text. The package includes one
// built-in classifier:
//
//   - Keyword: Case-insensitive substring matching against an ordered rule table
//
// Keyword classification is total: every issue receives at least one label,
// falling back to FallbackLabel when no rule matches. Matching is plain
// substring search without word boundaries, so "debugging" matches the
// keyword "bug". This is intentional: recall is preferred over precision
// for routing purposes.
//
// Custom classifiers can be implemented by satisfying the types.Classifier interface.
package classify
