// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

// Package graph provides the social graph index and bounded shortest-path
// search used by the trust scoring engine.
//
// The graph is directed: an edge A -> B means A follows B, and social
// distance is measured by walking follow edges forward from the evaluating
// user. Traversal is capped at a small hop limit (friend-of-friend by
// default); anything beyond the cap is reported as unreachable.
//
// # Determinism
//
// Adjacency lists are stored sorted by user ID and BFS visits neighbors in
// that order, so when multiple shortest paths of equal length exist the
// lexicographically-first one always wins. This is a deliberate tie-break
// policy: identical inputs produce identical distances and identical
// reconstructed paths across runs.
//
// # Batch Use
//
// When ranking many content items for one evaluator, Neighborhood computes
// the full bounded BFS frontier once; callers can then answer any number of
// distance queries from the returned map without re-traversing the graph.
package graph
