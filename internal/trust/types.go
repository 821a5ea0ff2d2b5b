// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import "time"

// InteractionType classifies an interaction a user had with content.
type InteractionType string

const (
	// InteractionUpvote is a simple positive endorsement.
	InteractionUpvote InteractionType = "upvote"
	// InteractionSave indicates the user bookmarked the content.
	InteractionSave InteractionType = "save"
	// InteractionShare indicates the user shared the content onward.
	InteractionShare InteractionType = "share"
	// InteractionDownvote is a negative signal.
	InteractionDownvote InteractionType = "downvote"
)

// Positive reports whether the interaction is a positive endorsement.
func (t InteractionType) Positive() bool {
	switch t {
	case InteractionUpvote, InteractionSave, InteractionShare:
		return true
	default:
		return false
	}
}

// SocialConnection is a directed follow edge in the social graph.
type SocialConnection struct {
	// FromUserID is the follower.
	FromUserID string `json:"from_user_id" validate:"required"`

	// ToUserID is the followed user.
	ToUserID string `json:"to_user_id" validate:"required"`

	// ConnectionType is the edge kind. Currently only "follow" exists.
	ConnectionType string `json:"connection_type,omitempty"`

	// EstablishedAt is when the connection was created.
	EstablishedAt time.Time `json:"established_at,omitempty"`

	// TrustWeight is a per-edge weight carried through from the caller.
	// The graph traversal does not consume it yet.
	TrustWeight float64 `json:"trust_weight,omitempty"`
}

// InteractionEvent is a single user interaction with a content item.
type InteractionEvent struct {
	// UserID is the acting user.
	UserID string `json:"user_id" validate:"required"`

	// ContentID is the content the interaction targets.
	ContentID string `json:"content_id" validate:"required"`

	// Type is the interaction kind. Unknown types contribute zero value.
	Type InteractionType `json:"interaction_type"`

	// Timestamp is when the interaction occurred.
	Timestamp time.Time `json:"timestamp"`

	// SocialDistance is the precomputed follow-graph distance of UserID
	// from the evaluating user. It is supplied by the caller and not
	// recomputed here.
	SocialDistance int `json:"social_distance" validate:"gte=0"`
}

// ContentMetadata describes the content item being scored.
type ContentMetadata struct {
	// ContentID uniquely identifies the content.
	ContentID string `json:"content_id" validate:"required"`

	// AuthorID is the user who created the content.
	AuthorID string `json:"author_id" validate:"required"`

	// CreatedAt is the content creation time.
	CreatedAt time.Time `json:"created_at"`

	// Category is the content category (e.g. "restaurant").
	Category string `json:"category,omitempty"`

	// Tags are free-form labels. Order is irrelevant to scoring.
	Tags []string `json:"tags,omitempty"`
}

// Request is a single trust score computation request.
type Request struct {
	// RequestID is an optional caller-supplied identifier for tracing.
	// A random ID is generated when empty.
	RequestID string `json:"request_id,omitempty"`

	// EvaluatorID is the user the score is personalized for.
	EvaluatorID string `json:"evaluator_id" validate:"required"`

	// Content is the item being scored.
	Content ContentMetadata `json:"content"`

	// Connections is the social graph edge list relevant to the
	// evaluator, typically their outgoing follows up to two hops.
	Connections []SocialConnection `json:"connections" validate:"dive"`

	// Interactions holds interaction events visible to the caller: events
	// on the target content plus the author's own interaction history.
	// The engine filters per signal.
	Interactions []InteractionEvent `json:"interactions" validate:"dive"`

	// Now overrides the evaluation clock. Zero means time.Now; tests and
	// replays set it for reproducibility.
	Now time.Time `json:"-"`
}

// PathNode is one hop on the social path from evaluator to author.
type PathNode struct {
	// UserID is the user at this position.
	UserID string `json:"user_id"`

	// Distance is the follow-hop distance from the evaluator.
	Distance int `json:"distance"`

	// ContributionWeight is the trust weight attributed to this hop.
	ContributionWeight float64 `json:"contribution_weight"`
}

// Breakdown holds the four component signals of a trust score.
type Breakdown struct {
	// SocialTrustWeight is the graph-proximity leg, in [0, 1].
	SocialTrustWeight float64 `json:"social_trust_weight"`

	// QualitySignals is the distance-weighted average interaction value.
	QualitySignals float64 `json:"quality_signals"`

	// RecencyFactor is the age-decay and activity-boost leg, in [0, 1].
	RecencyFactor float64 `json:"recency_factor"`

	// DiversityBonus rewards endorsement variety, bounded by the
	// configured caps.
	DiversityBonus float64 `json:"diversity_bonus"`
}

// Result is the outcome of one trust score computation.
// It is constructed fresh per call and owned by the caller.
type Result struct {
	// FinalScore is the combined trust score on the [0, MaxScore] scale,
	// rounded to two decimal places.
	FinalScore float64 `json:"final_score"`

	// Breakdown is the per-signal decomposition of the score.
	Breakdown Breakdown `json:"breakdown"`

	// SocialPath is the chain of users connecting evaluator to author.
	// Empty when the author is outside the evaluator's network.
	SocialPath []PathNode `json:"social_path"`

	// Confidence estimates how much evidence backs the score, in
	// [ConfidenceConfig.Min, ConfidenceConfig.Max].
	Confidence float64 `json:"confidence"`

	// Metadata carries tracing and diagnostic information.
	Metadata ResultMetadata `json:"metadata"`
}

// ResultMetadata carries tracing and diagnostic information for a result.
type ResultMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// EvaluatorID is the user the score was computed for.
	EvaluatorID string `json:"evaluator_id"`

	// ContentID is the scored content.
	ContentID string `json:"content_id"`

	// NeighborhoodCached reports whether the evaluator's graph
	// neighborhood was served from cache.
	NeighborhoodCached bool `json:"neighborhood_cached"`

	// LatencyMS is the computation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// Timestamp is when the result was produced.
	Timestamp time.Time `json:"timestamp"`
}
