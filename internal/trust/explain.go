// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import "strings"

// Explain renders a short human-readable explanation of a result from
// its breakdown and social path, suitable for display next to a
// recommendation ("Direct connection, Quality signals from your network").
func Explain(res *Result) string {
	if res == nil {
		return ""
	}

	var parts []string

	switch {
	case len(res.SocialPath) == 1:
		parts = append(parts, "Your own recommendation")
	case len(res.SocialPath) == 2:
		parts = append(parts, "Direct connection")
	case len(res.SocialPath) == 3:
		parts = append(parts, "Friend of a friend")
	default:
		parts = append(parts, "Outside your network")
	}

	if res.Breakdown.QualitySignals > 0 {
		parts = append(parts, "Quality signals from your network")
	}
	if res.Breakdown.RecencyFactor >= 0.5 {
		parts = append(parts, "Recent activity")
	}
	if res.Breakdown.DiversityBonus > 0 {
		parts = append(parts, "Endorsed by a varied audience")
	}

	return strings.Join(parts, ", ")
}
