// Package fingerprint computes stable content fingerprints for issue submissions.
package fingerprint

import "github.com/zeebo/xxh3"

// Issue computes a deterministic fingerprint from issue text.
//
// The title hash seeds the description hash, so field boundaries stay
// unambiguous ("ab"+"c" and "a"+"bc" produce different fingerprints).
//
// Parameters:
//   - title: Issue title (may be empty)
//   - description: Issue description (may be empty)
//
// Returns:
//   - uint64: Stable fingerprint for the title/description pair
func Issue(title, description string) uint64 {
	h := xxh3.HashString(title)

	return xxh3.HashStringSeed(description, h)
}

// ID computes the fingerprint of an explicit external identifier.
//
// Parameters:
//   - id: Caller-supplied issue ID
//
// Returns:
//   - uint64: Stable fingerprint for the ID
func ID(id string) uint64 {
	return xxh3.HashString(id)
}
