// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

// socialTrustWeight computes the graph-proximity leg of the score.
//
// The evaluator trusts themselves perfectly; everything else is derived
// from BFS distance to the author. reachable is false when the author
// lies beyond the hop cap, which zeroes the leg. The base distance weight
// is reinforced by the author's own interaction history: authors whose
// history is mostly positive engagement earn up to
// ReinforcementBase+ReinforcementRange, authors with no history keep a
// neutral 1.0 multiplier. The result never exceeds 1.0.
func socialTrustWeight(cfg *Config, evaluatorID, authorID string, distance int, reachable bool, authorHistory []InteractionEvent) float64 {
	if evaluatorID == authorID {
		return cfg.Distance.Self
	}
	if !reachable || distance > cfg.Graph.MaxSocialDistance {
		return 0
	}

	base := cfg.Distance.Weight(distance)
	if base == 0 {
		return 0
	}

	weight := base * reinforcementMultiplier(cfg, authorHistory)
	if weight > 1.0 {
		weight = 1.0
	}
	return weight
}

// reinforcementMultiplier derives a multiplier from the fraction of the
// author's own interactions that are positive. No history is neutral.
func reinforcementMultiplier(cfg *Config, authorHistory []InteractionEvent) float64 {
	if len(authorHistory) == 0 {
		return 1.0
	}

	positive := 0
	for _, ev := range authorHistory {
		if ev.Type.Positive() {
			positive++
		}
	}

	fraction := float64(positive) / float64(len(authorHistory))
	return cfg.Interaction.ReinforcementBase + cfg.Interaction.ReinforcementRange*fraction
}

// qualitySignal computes the distance-weighted average interaction value
// over the interactions a content item has received. Interactions from
// closer users dominate; events beyond the hop cap carry zero weight and
// are excluded from the average entirely. No interactions, or only
// zero-weight ones, yield a zero signal.
func qualitySignal(cfg *Config, contentEvents []InteractionEvent) float64 {
	var weighted, weightSum float64

	for _, ev := range contentEvents {
		w := cfg.Distance.Weight(ev.SocialDistance)
		if w == 0 {
			continue
		}
		weighted += cfg.Interaction.Value(ev.Type) * w
		weightSum += w
	}

	if weightSum == 0 {
		return 0
	}
	return weighted / weightSum
}
