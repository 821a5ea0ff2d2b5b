// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/OmeoneChain/omeonechain-sub013/internal/metrics"
	"github.com/OmeoneChain/omeonechain-sub013/internal/trust/graph"
	"github.com/OmeoneChain/omeonechain-sub013/internal/validation"
)

// Engine computes personalized trust scores. It is safe for concurrent
// use: scoring is a pure function of its inputs, and the only shared
// state is a concurrency-safe LRU of precomputed evaluator neighborhoods.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger

	// neighborhoods caches bounded-BFS results per (evaluator, graph
	// fingerprint). Nil when caching is disabled.
	neighborhoods *lru.Cache[string, neighborhoodEntry]
}

// neighborhoodEntry holds the precomputed traversal state for one
// evaluator over one graph snapshot.
type neighborhoodEntry struct {
	finder *graph.PathFinder
	hood   map[string]int
}

// NewEngine creates a trust scoring engine. A nil config uses defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		cfg:    cfg.Clone(),
		logger: logger.With().Str("component", "trust").Logger(),
	}

	if cfg.Cache.Enabled {
		cache, err := lru.New[string, neighborhoodEntry](cfg.Cache.MaxEvaluators)
		if err != nil {
			return nil, fmt.Errorf("create neighborhood cache: %w", err)
		}
		e.neighborhoods = cache
	}

	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Score computes the trust score for one content item relative to the
// evaluating user. Identical requests yield identical results.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Score(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	metrics.ScoreRequests.Inc()

	if err := ctx.Err(); err != nil {
		metrics.ScoreErrors.WithLabelValues("canceled").Inc()
		return nil, err
	}

	req = e.prepareRequest(req)

	if err := validateRequest(&req); err != nil {
		metrics.ScoreErrors.WithLabelValues("invalid_input").Inc()
		return nil, err
	}

	entry, cached := e.neighborhood(req.EvaluatorID, req.Connections)
	res := e.score(req.RequestID, req.EvaluatorID, entry, req.Content, req.Interactions, req.Now, cached, start)

	e.logger.Debug().
		Str("request_id", res.Metadata.RequestID).
		Str("evaluator_id", req.EvaluatorID).
		Str("content_id", req.Content.ContentID).
		Float64("score", res.FinalScore).
		Float64("confidence", res.Confidence).
		Bool("neighborhood_cached", cached).
		Int64("latency_ms", res.Metadata.LatencyMS).
		Msg("trust score computed")

	return res, nil
}

// prepareRequest applies defaults for request ID and clock.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Now.IsZero() {
		req.Now = time.Now()
	}
	return req
}

// validateRequest rejects malformed inputs at the boundary. Struct tags
// cover missing identifiers and negative distances; NaN/Inf weights and
// future-dated content need explicit checks.
func validateRequest(req *Request) error {
	if verr := validation.ValidateStruct(req); verr != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, verr)
	}

	for i := range req.Connections {
		w := req.Connections[i].TrustWeight
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: connections[%d].trust_weight is not a finite number", ErrInvalidInput, i)
		}
	}

	if req.Content.CreatedAt.After(req.Now) {
		return fmt.Errorf("%w: content created_at %s is in the future", ErrInvalidInput, req.Content.CreatedAt.Format(time.RFC3339))
	}

	return nil
}

// neighborhood returns the traversal state for an evaluator, from cache
// when possible. The cache key combines the evaluator with a fingerprint
// of the edge list, so a changed graph can never serve stale distances;
// a reordered but identical edge list merely misses and recomputes.
func (e *Engine) neighborhood(evaluatorID string, connections []SocialConnection) (neighborhoodEntry, bool) {
	if e.neighborhoods == nil {
		return e.buildNeighborhood(evaluatorID, connections), false
	}

	key := evaluatorID + "@" + strconv.FormatUint(graphFingerprint(connections), 16)
	if entry, ok := e.neighborhoods.Get(key); ok {
		metrics.NeighborhoodCacheHits.Inc()
		return entry, true
	}

	metrics.NeighborhoodCacheMisses.Inc()
	entry := e.buildNeighborhood(evaluatorID, connections)
	e.neighborhoods.Add(key, entry)
	return entry, false
}

// buildNeighborhood indexes the edge list and runs the bounded BFS once.
func (e *Engine) buildNeighborhood(evaluatorID string, connections []SocialConnection) neighborhoodEntry {
	edges := make([]graph.Edge, len(connections))
	for i, c := range connections {
		edges[i] = graph.Edge{From: c.FromUserID, To: c.ToUserID}
	}

	finder := graph.NewPathFinder(graph.NewIndex(edges), e.cfg.Graph.MaxSocialDistance)
	return neighborhoodEntry{
		finder: finder,
		hood:   finder.Neighborhood(evaluatorID),
	}
}

// graphFingerprint hashes an edge list for cache keying.
func graphFingerprint(connections []SocialConnection) uint64 {
	h := fnv.New64a()
	for _, c := range connections {
		h.Write([]byte(c.FromUserID))
		h.Write([]byte{0})
		h.Write([]byte(c.ToUserID))
		h.Write([]byte{1})
	}
	return h.Sum64()
}

// score runs the signal pipeline and assembles the result.
func (e *Engine) score(requestID, evaluatorID string, entry neighborhoodEntry, content ContentMetadata, interactions []InteractionEvent, now time.Time, cached bool, start time.Time) *Result {
	contentEvents := filterByContent(interactions, content.ContentID)
	authorHistory := filterByUser(interactions, content.AuthorID)

	distance, reachable := entry.hood[content.AuthorID]
	path := e.socialPath(evaluatorID, content.AuthorID, entry, reachable)

	breakdown := Breakdown{
		SocialTrustWeight: socialTrustWeight(e.cfg, evaluatorID, content.AuthorID, distance, reachable, authorHistory),
		QualitySignals:    qualitySignal(e.cfg, contentEvents),
		RecencyFactor:     recencyFactor(e.cfg, content.CreatedAt, now, contentEvents),
		DiversityBonus:    diversityBonus(e.cfg, contentEvents),
	}

	final := combineScore(e.cfg, breakdown)
	confidence := estimateConfidence(e.cfg, breakdown.SocialTrustWeight, len(contentEvents), len(path))

	metrics.ScoreValue.Observe(final)
	metrics.ScoreDuration.Observe(time.Since(start).Seconds())

	return &Result{
		FinalScore: final,
		Breakdown:  breakdown,
		SocialPath: path,
		Confidence: confidence,
		Metadata: ResultMetadata{
			RequestID:          requestID,
			EvaluatorID:        evaluatorID,
			ContentID:          content.ContentID,
			NeighborhoodCached: cached,
			LatencyMS:          time.Since(start).Milliseconds(),
			Timestamp:          now,
		},
	}
}

// socialPath reconstructs the evaluator-to-author chain with per-hop
// contribution weights. The hop index equals its distance from the
// evaluator, so the weight at position i is the distance weight of i.
func (e *Engine) socialPath(evaluatorID, authorID string, entry neighborhoodEntry, reachable bool) []PathNode {
	if evaluatorID == authorID {
		return []PathNode{{
			UserID:             authorID,
			Distance:           0,
			ContributionWeight: e.cfg.Distance.Weight(0),
		}}
	}
	if !reachable {
		return nil
	}

	chain, ok := entry.finder.Path(evaluatorID, authorID)
	if !ok {
		return nil
	}

	path := make([]PathNode, len(chain))
	for i, userID := range chain {
		path[i] = PathNode{
			UserID:             userID,
			Distance:           i,
			ContributionWeight: e.cfg.Distance.Weight(i),
		}
	}
	return path
}

// filterByContent returns the events targeting one content item.
func filterByContent(events []InteractionEvent, contentID string) []InteractionEvent {
	var out []InteractionEvent
	for _, ev := range events {
		if ev.ContentID == contentID {
			out = append(out, ev)
		}
	}
	return out
}

// filterByUser returns the events performed by one user.
func filterByUser(events []InteractionEvent, userID string) []InteractionEvent {
	var out []InteractionEvent
	for _, ev := range events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out
}
