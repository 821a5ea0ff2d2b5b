// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Session pins the graph traversal state for one evaluating user, so
// ranking a whole feed costs one BFS instead of one per content item.
// A Session is immutable and safe for concurrent use; open a new one
// when the evaluator's connection list changes.
type Session struct {
	engine      *Engine
	evaluatorID string
	entry       neighborhoodEntry
}

// NewSession precomputes the evaluator's bounded graph neighborhood over
// the given connection list.
func (e *Engine) NewSession(evaluatorID string, connections []SocialConnection) (*Session, error) {
	if evaluatorID == "" {
		return nil, fmt.Errorf("%w: evaluator_id is required", ErrInvalidInput)
	}
	for i := range connections {
		if connections[i].FromUserID == "" || connections[i].ToUserID == "" {
			return nil, fmt.Errorf("%w: connections[%d] has an empty user ID", ErrInvalidInput, i)
		}
	}

	entry, _ := e.neighborhood(evaluatorID, connections)

	e.logger.Debug().
		Str("evaluator_id", evaluatorID).
		Int("connections", len(connections)).
		Int("neighborhood", len(entry.hood)).
		Msg("session opened")

	return &Session{
		engine:      e,
		evaluatorID: evaluatorID,
		entry:       entry,
	}, nil
}

// EvaluatorID returns the user this session is personalized for.
func (s *Session) EvaluatorID() string {
	return s.evaluatorID
}

// Score computes the trust score for one content item using the
// session's precomputed neighborhood. The result is identical to what
// Engine.Score would produce for the same inputs.
func (s *Session) Score(ctx context.Context, content ContentMetadata, interactions []InteractionEvent) (*Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := Request{
		RequestID:    uuid.NewString(),
		EvaluatorID:  s.evaluatorID,
		Content:      content,
		Interactions: interactions,
		Now:          time.Now(),
	}
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	return s.engine.score(req.RequestID, s.evaluatorID, s.entry, content, interactions, req.Now, true, start), nil
}

// Rank scores every content item against the session's evaluator and
// returns results ordered by final score descending. Equal scores are
// broken by ascending content ID so feed order is reproducible.
func (s *Session) Rank(ctx context.Context, contents []ContentMetadata, interactions []InteractionEvent) ([]*Result, error) {
	results := make([]*Result, 0, len(contents))
	for i := range contents {
		res, err := s.Score(ctx, contents[i], interactions)
		if err != nil {
			return nil, fmt.Errorf("score content %q: %w", contents[i].ContentID, err)
		}
		results = append(results, res)
	}

	SortResults(results)
	return results, nil
}

// SortResults orders results by final score descending, breaking ties by
// ascending content ID.
func SortResults(results []*Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].Metadata.ContentID < results[j].Metadata.ContentID
	})
}
