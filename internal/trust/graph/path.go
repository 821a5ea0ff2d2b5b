// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package graph

// PathFinder answers bounded shortest-path queries over an Index.
//
// All searches are breadth-first and capped at maxHops; any node reachable
// only beyond the cap is reported as unreachable rather than given a
// numeric distance. PathFinder is stateless between calls and safe for
// concurrent use.
type PathFinder struct {
	idx     *Index
	maxHops int
}

// NewPathFinder creates a PathFinder over idx capped at maxHops.
func NewPathFinder(idx *Index, maxHops int) *PathFinder {
	if maxHops < 0 {
		maxHops = 0
	}
	return &PathFinder{idx: idx, maxHops: maxHops}
}

// MaxHops returns the traversal cap.
func (p *PathFinder) MaxHops() int {
	return p.maxHops
}

// Distance returns the number of follow hops from evaluator to target.
// The second return is false when target is not reachable within the cap.
// A user is always at distance 0 from themselves.
func (p *PathFinder) Distance(evaluator, target string) (int, bool) {
	if evaluator == target {
		return 0, true
	}

	frontier := []string{evaluator}
	visited := map[string]struct{}{evaluator: {}}

	for depth := 1; depth <= p.maxHops; depth++ {
		var next []string
		for _, node := range frontier {
			for _, neighbor := range p.idx.Follows(node) {
				if _, seen := visited[neighbor]; seen {
					continue
				}
				if neighbor == target {
					return depth, true
				}
				visited[neighbor] = struct{}{}
				next = append(next, neighbor)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return 0, false
}

// Path reconstructs one shortest chain of user IDs from evaluator to
// target, inclusive of both endpoints. With sorted adjacency the first
// path found is always the same one; ties between equal-length paths are
// broken toward the lexicographically smaller intermediate users.
// The second return is false when target is unreachable within the cap.
func (p *PathFinder) Path(evaluator, target string) ([]string, bool) {
	if evaluator == target {
		return []string{evaluator}, true
	}

	parent := map[string]string{evaluator: ""}
	frontier := []string{evaluator}

	for depth := 1; depth <= p.maxHops; depth++ {
		var next []string
		for _, node := range frontier {
			for _, neighbor := range p.idx.Follows(node) {
				if _, seen := parent[neighbor]; seen {
					continue
				}
				parent[neighbor] = node
				if neighbor == target {
					return rebuild(parent, evaluator, target), true
				}
				next = append(next, neighbor)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return nil, false
}

// Neighborhood computes the distance of every user reachable from
// evaluator within the hop cap, including the evaluator at distance 0.
// One call answers any number of subsequent distance lookups, which is the
// preferred shape when scoring many content items for the same evaluator.
func (p *PathFinder) Neighborhood(evaluator string) map[string]int {
	dist := map[string]int{evaluator: 0}
	frontier := []string{evaluator}

	for depth := 1; depth <= p.maxHops; depth++ {
		var next []string
		for _, node := range frontier {
			for _, neighbor := range p.idx.Follows(node) {
				if _, seen := dist[neighbor]; seen {
					continue
				}
				dist[neighbor] = depth
				next = append(next, neighbor)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return dist
}

// rebuild walks parent pointers from target back to evaluator.
func rebuild(parent map[string]string, evaluator, target string) []string {
	var reversed []string
	for node := target; node != ""; node = parent[node] {
		reversed = append(reversed, node)
		if node == evaluator {
			break
		}
	}

	path := make([]string, len(reversed))
	for i, node := range reversed {
		path[len(reversed)-1-i] = node
	}
	return path
}
