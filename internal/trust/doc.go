// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

// Package trust implements the social trust scoring engine.
//
// The engine computes a personalized trust score for a piece of content
// relative to a specific evaluating user. Four signals are combined:
//
//   - Social trust weight: graph distance from evaluator to author over
//     directed follow edges, capped at friend-of-friend, reinforced by the
//     author's own interaction history.
//   - Quality signals: distance-weighted average value of the interactions
//     the content has received (upvotes, saves, shares, downvotes).
//   - Recency factor: exponential half-life decay of content age, boosted
//     by recent interaction volume.
//   - Diversity bonus: reward for endorsement variety across distinct
//     users, social distances, and interaction types.
//
// # Design Principles
//
//   - Pure: no I/O, no shared mutable state; identical inputs produce
//     identical results (deterministic traversal order, see the graph
//     subpackage).
//   - Defensive defaults: missing evidence degrades signals to zero, it
//     never fails a request. Only malformed inputs (NaN weights, negative
//     distances, content dated in the future) are rejected, with
//     ErrInvalidInput.
//   - Explicit configuration: every scoring constant lives in Config so
//     tests and deployments can vary thresholds without global state.
//
// # Usage
//
//	cfg := trust.DefaultConfig()
//	engine, err := trust.NewEngine(cfg, logger)
//
//	res, err := engine.Score(ctx, trust.Request{
//	    EvaluatorID:  "alice",
//	    Content:      content,
//	    Connections:  connections,
//	    Interactions: interactions,
//	})
//
// When ranking many content items for one evaluator, open a Session to
// compute the evaluator's graph neighborhood once and reuse it:
//
//	session, err := engine.NewSession("alice", connections)
//	results, err := session.Rank(ctx, contents, interactions)
//
// # Thread Safety
//
// Engine and Session are safe for concurrent use. Scoring acquires no
// locks; the only shared state is a bounded LRU cache of precomputed
// evaluator neighborhoods, which is itself concurrency-safe.
package trust
