// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import (
	"math"
	"time"
)

const hoursPerDay = 24.0

// recencyFactor combines exponential half-life decay of content age with
// a boost for recent interaction volume. A brand-new item with no
// activity scores ~1.0; at HalfLifeDays of age the decay alone is 0.5.
// The boost adds BoostPerInteraction per event inside the boost window,
// capped at MaxBoost, and the combined factor never exceeds 1.0.
func recencyFactor(cfg *Config, createdAt, now time.Time, contentEvents []InteractionEvent) float64 {
	ageDays := now.Sub(createdAt).Hours() / hoursPerDay
	if ageDays < 0 {
		ageDays = 0
	}

	decay := math.Exp(-ageDays * math.Ln2 / cfg.Recency.HalfLifeDays)

	windowStart := now.Add(-time.Duration(cfg.Recency.BoostWindowDays * hoursPerDay * float64(time.Hour)))
	recent := 0
	for _, ev := range contentEvents {
		if !ev.Timestamp.Before(windowStart) && !ev.Timestamp.After(now) {
			recent++
		}
	}

	boost := cfg.Recency.BoostPerInteraction * float64(recent)
	if boost > cfg.Recency.MaxBoost {
		boost = cfg.Recency.MaxBoost
	}

	factor := decay + boost
	if factor > 1.0 {
		factor = 1.0
	}
	return factor
}
