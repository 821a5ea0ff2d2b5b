// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import "fmt"

// Config contains all configuration for the trust scoring engine.
// Every scoring constant is explicit here so tests and deployments can
// vary thresholds without touching global state.
type Config struct {
	// Graph contains traversal parameters.
	Graph GraphConfig `json:"graph" koanf:"graph"`

	// Weights defines the relative contribution of each signal.
	// Weights are normalized at combination time, so they don't need to
	// sum to 1.0 (the defaults do).
	Weights SignalWeights `json:"weights" koanf:"weights"`

	// Distance maps social distance to trust weight.
	Distance DistanceWeights `json:"distance" koanf:"distance"`

	// Interaction contains per-type interaction values and the author
	// reinforcement parameters.
	Interaction InteractionConfig `json:"interaction" koanf:"interaction"`

	// Recency contains age-decay and activity-boost parameters.
	Recency RecencyConfig `json:"recency" koanf:"recency"`

	// Diversity contains endorsement-variety bonus parameters.
	Diversity DiversityConfig `json:"diversity" koanf:"diversity"`

	// Confidence contains confidence estimation parameters.
	Confidence ConfidenceConfig `json:"confidence" koanf:"confidence"`

	// MaxScore is the upper bound of the final score scale.
	// Default: 10.0.
	MaxScore float64 `json:"max_score" koanf:"max_score"`

	// MinTrustThreshold is the minimum score for content to count as
	// trusted at all. NOTE: this constant is expressed on a 0-1 scale
	// while category boundaries are on the 0-MaxScore scale; both are
	// preserved as designed and compared against the final score as-is.
	// Default: 0.25.
	MinTrustThreshold float64 `json:"min_trust_threshold" koanf:"min_trust_threshold"`

	// Cache contains neighborhood cache parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`
}

// GraphConfig contains traversal parameters.
type GraphConfig struct {
	// MaxSocialDistance is the BFS hop cap. Users reachable only beyond
	// this many follow hops are treated as unreachable. Trust degrades
	// sharply beyond friend-of-friend, so the cap bounds both cost and
	// semantics.
	// Default: 2.
	MaxSocialDistance int `json:"max_social_distance" koanf:"max_social_distance"`
}

// SignalWeights defines the relative contribution of each signal.
type SignalWeights struct {
	// Social is the weight of the social trust leg.
	// Default: 0.4.
	Social float64 `json:"social" koanf:"social"`

	// Quality is the weight of the interaction quality leg.
	// Default: 0.3.
	Quality float64 `json:"quality" koanf:"quality"`

	// Recency is the weight of the recency leg.
	// Default: 0.2.
	Recency float64 `json:"recency" koanf:"recency"`

	// Diversity is the weight of the diversity bonus leg.
	// Default: 0.1.
	Diversity float64 `json:"diversity" koanf:"diversity"`
}

// Normalize returns a copy with weights scaled to sum to 1.0.
// All-zero weights normalize to the default distribution.
func (w SignalWeights) Normalize() SignalWeights {
	sum := w.Social + w.Quality + w.Recency + w.Diversity
	if sum == 0 {
		return DefaultConfig().Weights
	}
	return SignalWeights{
		Social:    w.Social / sum,
		Quality:   w.Quality / sum,
		Recency:   w.Recency / sum,
		Diversity: w.Diversity / sum,
	}
}

// DistanceWeights maps social distance to trust weight.
type DistanceWeights struct {
	// Self is the weight at distance zero (the evaluator themselves).
	// Default: 1.0.
	Self float64 `json:"self" koanf:"self"`

	// DirectFollow is the weight for a directly followed user.
	// Default: 0.75.
	DirectFollow float64 `json:"direct_follow" koanf:"direct_follow"`

	// SecondHop is the weight for a friend-of-friend.
	// Default: 0.25.
	SecondHop float64 `json:"second_hop" koanf:"second_hop"`
}

// Weight returns the trust weight for a social distance.
// Distances beyond the second hop weigh zero.
func (d DistanceWeights) Weight(distance int) float64 {
	switch distance {
	case 0:
		return d.Self
	case 1:
		return d.DirectFollow
	case 2:
		return d.SecondHop
	default:
		return 0
	}
}

// InteractionConfig contains per-type interaction values and the author
// reinforcement parameters.
type InteractionConfig struct {
	// UpvoteValue is the contribution of an upvote.
	// Default: 1.0.
	UpvoteValue float64 `json:"upvote_value" koanf:"upvote_value"`

	// SaveValue is the contribution of a save.
	// Default: 1.2.
	SaveValue float64 `json:"save_value" koanf:"save_value"`

	// ShareValue is the contribution of a share.
	// Default: 1.5.
	ShareValue float64 `json:"share_value" koanf:"share_value"`

	// DownvoteValue is the contribution of a downvote.
	// Default: -0.5.
	DownvoteValue float64 `json:"downvote_value" koanf:"downvote_value"`

	// ReinforcementBase is the author reinforcement multiplier floor,
	// applied when none of the author's own interactions are positive.
	// Default: 0.8.
	ReinforcementBase float64 `json:"reinforcement_base" koanf:"reinforcement_base"`

	// ReinforcementRange is the multiplier span above the base. A fully
	// positive author history yields ReinforcementBase + ReinforcementRange.
	// Default: 0.4.
	ReinforcementRange float64 `json:"reinforcement_range" koanf:"reinforcement_range"`
}

// Value returns the score contribution of an interaction type.
// Unknown types contribute nothing.
func (c InteractionConfig) Value(t InteractionType) float64 {
	switch t {
	case InteractionUpvote:
		return c.UpvoteValue
	case InteractionSave:
		return c.SaveValue
	case InteractionShare:
		return c.ShareValue
	case InteractionDownvote:
		return c.DownvoteValue
	default:
		return 0
	}
}

// RecencyConfig contains age-decay and activity-boost parameters.
type RecencyConfig struct {
	// HalfLifeDays is the content-age half life: at this age the decay
	// factor is 0.5.
	// Default: 30.
	HalfLifeDays float64 `json:"half_life_days" koanf:"half_life_days"`

	// BoostPerInteraction is the boost added per interaction inside the
	// boost window.
	// Default: 0.1.
	BoostPerInteraction float64 `json:"boost_per_interaction" koanf:"boost_per_interaction"`

	// BoostWindowDays is how far back interactions count toward the boost.
	// Default: 7.
	BoostWindowDays float64 `json:"boost_window_days" koanf:"boost_window_days"`

	// MaxBoost caps the interaction boost.
	// Default: 0.5.
	MaxBoost float64 `json:"max_boost" koanf:"max_boost"`
}

// DiversityConfig contains endorsement-variety bonus parameters.
type DiversityConfig struct {
	// PerUser is the bonus per distinct interacting user.
	// Default: 0.05.
	PerUser float64 `json:"per_user" koanf:"per_user"`

	// UserCap caps the distinct-user bonus.
	// Default: 0.3.
	UserCap float64 `json:"user_cap" koanf:"user_cap"`

	// PerDistance is the bonus per distinct social distance observed.
	// Default: 0.1.
	PerDistance float64 `json:"per_distance" koanf:"per_distance"`

	// DistanceCap caps the distance-variety bonus.
	// Default: 0.2.
	DistanceCap float64 `json:"distance_cap" koanf:"distance_cap"`

	// PerType is the bonus per distinct interaction type observed.
	// Default: 0.05.
	PerType float64 `json:"per_type" koanf:"per_type"`

	// TypeCap caps the type-variety bonus.
	// Default: 0.15.
	TypeCap float64 `json:"type_cap" koanf:"type_cap"`
}

// ConfidenceConfig contains confidence estimation parameters.
type ConfidenceConfig struct {
	// PerInteraction is the confidence added per observed interaction.
	// Default: 0.1.
	PerInteraction float64 `json:"per_interaction" koanf:"per_interaction"`

	// InteractionCap caps the interaction-count confidence leg.
	// Default: 0.8.
	InteractionCap float64 `json:"interaction_cap" koanf:"interaction_cap"`

	// Min is the confidence floor.
	// Default: 0.1.
	Min float64 `json:"min" koanf:"min"`

	// Max is the confidence ceiling.
	// Default: 1.0.
	Max float64 `json:"max" koanf:"max"`
}

// CacheConfig contains neighborhood cache parameters.
type CacheConfig struct {
	// Enabled controls whether evaluator neighborhoods are cached.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// MaxEvaluators is the LRU capacity in cached neighborhoods.
	// Default: 1024.
	MaxEvaluators int `json:"max_evaluators" koanf:"max_evaluators"`
}

// DefaultConfig returns a Config with the production scoring constants.
func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			MaxSocialDistance: 2,
		},
		Weights: SignalWeights{
			Social:    0.4,
			Quality:   0.3,
			Recency:   0.2,
			Diversity: 0.1,
		},
		Distance: DistanceWeights{
			Self:         1.0,
			DirectFollow: 0.75,
			SecondHop:    0.25,
		},
		Interaction: InteractionConfig{
			UpvoteValue:        1.0,
			SaveValue:          1.2,
			ShareValue:         1.5,
			DownvoteValue:      -0.5,
			ReinforcementBase:  0.8,
			ReinforcementRange: 0.4,
		},
		Recency: RecencyConfig{
			HalfLifeDays:        30,
			BoostPerInteraction: 0.1,
			BoostWindowDays:     7,
			MaxBoost:            0.5,
		},
		Diversity: DiversityConfig{
			PerUser:     0.05,
			UserCap:     0.3,
			PerDistance: 0.1,
			DistanceCap: 0.2,
			PerType:     0.05,
			TypeCap:     0.15,
		},
		Confidence: ConfidenceConfig{
			PerInteraction: 0.1,
			InteractionCap: 0.8,
			Min:            0.1,
			Max:            1.0,
		},
		MaxScore:          10.0,
		MinTrustThreshold: 0.25,
		Cache: CacheConfig{
			Enabled:       true,
			MaxEvaluators: 1024,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.Graph.MaxSocialDistance < 0 {
		return fmt.Errorf("graph.max_social_distance must be non-negative, got %d", c.Graph.MaxSocialDistance)
	}

	if c.Weights.Social < 0 || c.Weights.Quality < 0 || c.Weights.Recency < 0 || c.Weights.Diversity < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}

	if c.Distance.Self < 0 || c.Distance.Self > 1 {
		return fmt.Errorf("distance.self must be in [0, 1], got %f", c.Distance.Self)
	}
	if c.Distance.DirectFollow < 0 || c.Distance.DirectFollow > 1 {
		return fmt.Errorf("distance.direct_follow must be in [0, 1], got %f", c.Distance.DirectFollow)
	}
	if c.Distance.SecondHop < 0 || c.Distance.SecondHop > 1 {
		return fmt.Errorf("distance.second_hop must be in [0, 1], got %f", c.Distance.SecondHop)
	}

	if c.Interaction.ReinforcementBase < 0 {
		return fmt.Errorf("interaction.reinforcement_base must be non-negative, got %f", c.Interaction.ReinforcementBase)
	}
	if c.Interaction.ReinforcementRange < 0 {
		return fmt.Errorf("interaction.reinforcement_range must be non-negative, got %f", c.Interaction.ReinforcementRange)
	}

	if c.Recency.HalfLifeDays <= 0 {
		return fmt.Errorf("recency.half_life_days must be positive, got %f", c.Recency.HalfLifeDays)
	}
	if c.Recency.BoostWindowDays < 0 {
		return fmt.Errorf("recency.boost_window_days must be non-negative, got %f", c.Recency.BoostWindowDays)
	}
	if c.Recency.MaxBoost < 0 {
		return fmt.Errorf("recency.max_boost must be non-negative, got %f", c.Recency.MaxBoost)
	}

	if c.Confidence.Min < 0 || c.Confidence.Max > 1 || c.Confidence.Min > c.Confidence.Max {
		return fmt.Errorf("confidence bounds must satisfy 0 <= min <= max <= 1, got [%f, %f]", c.Confidence.Min, c.Confidence.Max)
	}

	if c.MaxScore <= 0 {
		return fmt.Errorf("max_score must be positive, got %f", c.MaxScore)
	}
	if c.MinTrustThreshold < 0 {
		return fmt.Errorf("min_trust_threshold must be non-negative, got %f", c.MinTrustThreshold)
	}

	if c.Cache.Enabled && c.Cache.MaxEvaluators < 1 {
		return fmt.Errorf("cache.max_evaluators must be positive when cache is enabled, got %d", c.Cache.MaxEvaluators)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types.
	clone := *c
	return &clone
}
