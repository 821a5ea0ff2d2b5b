// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import "math"

// combineScore linearly combines the four signals into the final score.
// Weights are normalized so they always sum to 1.0 before scaling to the
// MaxScore range. The result is clamped to [0, MaxScore] (a downvote-heavy
// quality signal can push the raw combination below zero) and rounded to
// two decimal places for presentation.
func combineScore(cfg *Config, b Breakdown) float64 {
	w := cfg.Weights.Normalize()

	raw := (w.Social*b.SocialTrustWeight +
		w.Quality*b.QualitySignals +
		w.Recency*b.RecencyFactor +
		w.Diversity*b.DiversityBonus) * cfg.MaxScore

	if raw > cfg.MaxScore {
		raw = cfg.MaxScore
	}
	if raw < 0 {
		raw = 0
	}

	return round2(raw)
}

// estimateConfidence derives a heuristic evidence estimate from three
// legs: the social trust weight itself, a diminishing-returns count of
// observed interactions, and the inverse social path length (shorter
// chains are stronger evidence). The average of the three is clamped to
// the configured bounds, so even a score backed by nothing reports the
// floor rather than zero.
func estimateConfidence(cfg *Config, socialTrust float64, interactionCount, pathLength int) float64 {
	interaction := capAt(cfg.Confidence.PerInteraction*float64(interactionCount), cfg.Confidence.InteractionCap)

	var path float64
	if pathLength > 0 {
		path = 1.0 / float64(pathLength)
	}

	confidence := (socialTrust + interaction + path) / 3.0

	if confidence < cfg.Confidence.Min {
		confidence = cfg.Confidence.Min
	}
	if confidence > cfg.Confidence.Max {
		confidence = cfg.Confidence.Max
	}
	return confidence
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
