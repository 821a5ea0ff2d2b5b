// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package graph

import "sort"

// Edge is a directed follow relationship: From follows To.
type Edge struct {
	From string
	To   string
}

// Index is an adjacency index over directed follow edges.
//
// Adjacency lists are sorted ascending by user ID and de-duplicated, so
// duplicate input edges are idempotent and iteration order is stable.
// An Index is immutable after construction and safe for concurrent reads.
type Index struct {
	adj   map[string][]string
	edges int
}

// NewIndex builds an adjacency index from a flat edge list.
// Self-loops and duplicate edges are dropped. Building is O(E log E)
// due to the per-node neighbor sort.
func NewIndex(edges []Edge) *Index {
	adj := make(map[string][]string, len(edges))
	for _, e := range edges {
		if e.From == "" || e.To == "" || e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
	}

	total := 0
	for from, neighbors := range adj {
		sort.Strings(neighbors)
		adj[from] = dedupSorted(neighbors)
		total += len(adj[from])
	}

	return &Index{adj: adj, edges: total}
}

// Follows returns the sorted list of user IDs that id follows.
// The returned slice is owned by the index and must not be modified.
func (i *Index) Follows(id string) []string {
	return i.adj[id]
}

// EdgeCount returns the number of distinct edges in the index.
func (i *Index) EdgeCount() int {
	return i.edges
}

// dedupSorted removes adjacent duplicates from a sorted slice in place.
func dedupSorted(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
