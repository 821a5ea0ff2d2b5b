// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

// Category is a human-readable trust tier for a final score.
type Category string

const (
	// CategoryHighlyTrusted covers scores of 8.0 and above.
	CategoryHighlyTrusted Category = "Highly Trusted"
	// CategoryTrusted covers scores in [6.0, 8.0).
	CategoryTrusted Category = "Trusted"
	// CategoryModeratelyTrusted covers scores in [4.0, 6.0).
	CategoryModeratelyTrusted Category = "Moderately Trusted"
	// CategoryLowTrust covers scores in [2.0, 4.0).
	CategoryLowTrust Category = "Low Trust"
	// CategoryUntrusted covers everything below 2.0.
	CategoryUntrusted Category = "Untrusted"
)

// Categorize maps a final score on the 0-10 scale to its trust tier.
func Categorize(score float64) Category {
	switch {
	case score >= 8.0:
		return CategoryHighlyTrusted
	case score >= 6.0:
		return CategoryTrusted
	case score >= 4.0:
		return CategoryModeratelyTrusted
	case score >= 2.0:
		return CategoryLowTrust
	default:
		return CategoryUntrusted
	}
}

// MeetsTrustThreshold reports whether a final score clears the minimum
// trust threshold. The threshold constant is expressed on a 0-1 scale in
// the original design while scores are 0-10; the comparison is kept as
// designed rather than rescaled.
func (e *Engine) MeetsTrustThreshold(score float64) bool {
	return score >= e.cfg.MinTrustThreshold
}
