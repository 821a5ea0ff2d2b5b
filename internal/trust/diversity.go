// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

// diversityBonus rewards variety of endorsement on a content item: how
// many distinct users interacted, from how many distinct social
// distances, and with how many distinct interaction types. Each leg is
// capped independently, so the bonus is bounded by
// UserCap+DistanceCap+TypeCap but in practice limited by the evidence
// available.
func diversityBonus(cfg *Config, contentEvents []InteractionEvent) float64 {
	if len(contentEvents) == 0 {
		return 0
	}

	users := make(map[string]struct{}, len(contentEvents))
	distances := make(map[int]struct{}, len(contentEvents))
	types := make(map[InteractionType]struct{}, len(contentEvents))

	for _, ev := range contentEvents {
		users[ev.UserID] = struct{}{}
		distances[ev.SocialDistance] = struct{}{}
		types[ev.Type] = struct{}{}
	}

	userBonus := capAt(cfg.Diversity.PerUser*float64(len(users)), cfg.Diversity.UserCap)
	distanceBonus := capAt(cfg.Diversity.PerDistance*float64(len(distances)), cfg.Diversity.DistanceCap)
	typeBonus := capAt(cfg.Diversity.PerType*float64(len(types)), cfg.Diversity.TypeCap)

	return userBonus + distanceBonus + typeBonus
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
