// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > floatTolerance {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

// --- Test: NewEngine ---

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		e := newTestEngine(t, nil)
		if got := e.Config().MaxScore; got != 10.0 {
			t.Errorf("Config().MaxScore = %f, want 10.0", got)
		}
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.MaxScore = 0
		if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
			t.Error("NewEngine() with zero max_score should fail")
		}
	})

	t.Run("engine config is isolated from the caller", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		e := newTestEngine(t, cfg)
		cfg.MaxScore = 100
		if got := e.Config().MaxScore; got != 10.0 {
			t.Errorf("Config().MaxScore = %f after caller mutation, want 10.0", got)
		}
	})
}

// --- Test: Engine.Score ---

func TestScoreDirectFollowFreshContent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	res, err := e.Score(context.Background(), Request{
		EvaluatorID: "alice",
		Content: ContentMetadata{
			ContentID: "rec-1",
			AuthorID:  "bob",
			CreatedAt: now,
		},
		Connections: []SocialConnection{
			{FromUserID: "alice", ToUserID: "bob"},
		},
		Now: now,
	})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	assertClose(t, "SocialTrustWeight", res.Breakdown.SocialTrustWeight, 0.75)
	assertClose(t, "QualitySignals", res.Breakdown.QualitySignals, 0)
	assertClose(t, "RecencyFactor", res.Breakdown.RecencyFactor, 1.0)
	assertClose(t, "DiversityBonus", res.Breakdown.DiversityBonus, 0)

	// 0.4*0.75*10 + 0.2*1.0*10
	assertClose(t, "FinalScore", res.FinalScore, 5.0)
	if got := Categorize(res.FinalScore); got != CategoryModeratelyTrusted {
		t.Errorf("Categorize() = %q, want %q", got, CategoryModeratelyTrusted)
	}

	assertClose(t, "Confidence", res.Confidence, (0.75+0+0.5)/3.0)

	wantPath := []PathNode{
		{UserID: "alice", Distance: 0, ContributionWeight: 1.0},
		{UserID: "bob", Distance: 1, ContributionWeight: 0.75},
	}
	if len(res.SocialPath) != len(wantPath) {
		t.Fatalf("SocialPath length = %d, want %d", len(res.SocialPath), len(wantPath))
	}
	for i, node := range wantPath {
		if res.SocialPath[i] != node {
			t.Errorf("SocialPath[%d] = %+v, want %+v", i, res.SocialPath[i], node)
		}
	}

	if res.Metadata.EvaluatorID != "alice" || res.Metadata.ContentID != "rec-1" {
		t.Errorf("Metadata = %+v, missing evaluator or content", res.Metadata)
	}
	if res.Metadata.RequestID == "" {
		t.Error("Metadata.RequestID should be generated when not supplied")
	}
}

func TestScoreOwnContent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	res, err := e.Score(context.Background(), Request{
		EvaluatorID: "alice",
		Content: ContentMetadata{
			ContentID: "rec-1",
			AuthorID:  "alice",
			CreatedAt: now,
		},
		Now: now,
	})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	assertClose(t, "SocialTrustWeight", res.Breakdown.SocialTrustWeight, 1.0)
	// 0.4*1.0*10 + 0.2*1.0*10
	assertClose(t, "FinalScore", res.FinalScore, 6.0)
	assertClose(t, "Confidence", res.Confidence, (1.0+0+1.0)/3.0)

	if len(res.SocialPath) != 1 || res.SocialPath[0].UserID != "alice" {
		t.Errorf("SocialPath = %+v, want single self node", res.SocialPath)
	}
}

func TestScoreUnreachableAuthor(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	res, err := e.Score(context.Background(), Request{
		EvaluatorID: "alice",
		Content: ContentMetadata{
			ContentID: "rec-1",
			AuthorID:  "stranger",
			CreatedAt: now,
		},
		Connections: []SocialConnection{
			{FromUserID: "alice", ToUserID: "bob"},
		},
		Now: now,
	})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	assertClose(t, "SocialTrustWeight", res.Breakdown.SocialTrustWeight, 0)
	// Only the recency leg contributes: 0.2*1.0*10.
	assertClose(t, "FinalScore", res.FinalScore, 2.0)
	if res.SocialPath != nil {
		t.Errorf("SocialPath = %+v, want nil for unreachable author", res.SocialPath)
	}
	assertClose(t, "Confidence", res.Confidence, 0.1)
}

func TestScoreSecondHopWithInteractions(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	res, err := e.Score(context.Background(), Request{
		EvaluatorID: "alice",
		Content: ContentMetadata{
			ContentID: "rec-1",
			AuthorID:  "carol",
			CreatedAt: now.AddDate(0, 0, -30),
		},
		Connections: []SocialConnection{
			{FromUserID: "alice", ToUserID: "bob"},
			{FromUserID: "bob", ToUserID: "carol"},
		},
		Interactions: []InteractionEvent{
			// Events on the scored content.
			{UserID: "bob", ContentID: "rec-1", Type: InteractionShare, SocialDistance: 1, Timestamp: now.AddDate(0, 0, -1)},
			{UserID: "dave", ContentID: "rec-1", Type: InteractionDownvote, SocialDistance: 2, Timestamp: now.AddDate(0, 0, -10)},
			{UserID: "eve", ContentID: "rec-1", Type: InteractionUpvote, SocialDistance: 5, Timestamp: now.AddDate(0, 0, -10)},
			// The author's own history on other content.
			{UserID: "carol", ContentID: "rec-9", Type: InteractionUpvote, SocialDistance: 2, Timestamp: now.AddDate(0, 0, -3)},
			{UserID: "carol", ContentID: "rec-8", Type: InteractionSave, SocialDistance: 2, Timestamp: now.AddDate(0, 0, -4)},
		},
		Now: now,
	})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	// Second hop base 0.25, fully positive author history multiplies 1.2.
	assertClose(t, "SocialTrustWeight", res.Breakdown.SocialTrustWeight, 0.3)

	// (1.5*0.75 - 0.5*0.25) / (0.75 + 0.25); the distance-5 event weighs zero.
	assertClose(t, "QualitySignals", res.Breakdown.QualitySignals, 1.0)

	// One half life of decay plus one in-window interaction boost.
	assertClose(t, "RecencyFactor", res.Breakdown.RecencyFactor, 0.6)

	// Three users, three distances (capped at 0.2), three types (capped at 0.15).
	assertClose(t, "DiversityBonus", res.Breakdown.DiversityBonus, 0.15+0.2+0.15)

	// 0.4*0.3 + 0.3*1.0 + 0.2*0.6 + 0.1*0.5 = 0.59, scaled and rounded.
	assertClose(t, "FinalScore", res.FinalScore, 5.9)
	if got := Categorize(res.FinalScore); got != CategoryModeratelyTrusted {
		t.Errorf("Categorize() = %q, want %q", got, CategoryModeratelyTrusted)
	}

	assertClose(t, "Confidence", res.Confidence, (0.3+0.3+1.0/3.0)/3.0)

	wantUsers := []string{"alice", "bob", "carol"}
	if len(res.SocialPath) != len(wantUsers) {
		t.Fatalf("SocialPath length = %d, want %d", len(res.SocialPath), len(wantUsers))
	}
	for i, userID := range wantUsers {
		if res.SocialPath[i].UserID != userID {
			t.Errorf("SocialPath[%d].UserID = %q, want %q", i, res.SocialPath[i].UserID, userID)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	req := Request{
		EvaluatorID: "alice",
		Content: ContentMetadata{
			ContentID: "rec-1",
			AuthorID:  "carol",
			CreatedAt: now.AddDate(0, 0, -5),
		},
		Connections: []SocialConnection{
			{FromUserID: "alice", ToUserID: "bob"},
			{FromUserID: "bob", ToUserID: "carol"},
		},
		Interactions: []InteractionEvent{
			{UserID: "bob", ContentID: "rec-1", Type: InteractionSave, SocialDistance: 1, Timestamp: now.AddDate(0, 0, -2)},
		},
		Now: now,
	}

	first, err := e.Score(context.Background(), req)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	second, err := e.Score(context.Background(), req)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if first.FinalScore != second.FinalScore {
		t.Errorf("FinalScore differs across identical requests: %f vs %f", first.FinalScore, second.FinalScore)
	}
	if first.Breakdown != second.Breakdown {
		t.Errorf("Breakdown differs across identical requests: %+v vs %+v", first.Breakdown, second.Breakdown)
	}
	if first.Confidence != second.Confidence {
		t.Errorf("Confidence differs across identical requests: %f vs %f", first.Confidence, second.Confidence)
	}

	if first.Metadata.NeighborhoodCached {
		t.Error("first request should miss the neighborhood cache")
	}
	if !second.Metadata.NeighborhoodCached {
		t.Error("second identical request should hit the neighborhood cache")
	}
}

func TestScoreCacheDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	req := Request{
		EvaluatorID: "alice",
		Content:     ContentMetadata{ContentID: "rec-1", AuthorID: "bob", CreatedAt: now},
		Connections: []SocialConnection{{FromUserID: "alice", ToUserID: "bob"}},
		Now:         now,
	}

	for i := 0; i < 2; i++ {
		res, err := e.Score(context.Background(), req)
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if res.Metadata.NeighborhoodCached {
			t.Error("NeighborhoodCached should be false when caching is disabled")
		}
		assertClose(t, "FinalScore", res.FinalScore, 5.0)
	}
}

func TestScoreInvalidInput(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	valid := func() Request {
		return Request{
			EvaluatorID: "alice",
			Content:     ContentMetadata{ContentID: "rec-1", AuthorID: "bob", CreatedAt: now},
			Connections: []SocialConnection{{FromUserID: "alice", ToUserID: "bob"}},
			Now:         now,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{
			name:   "missing evaluator",
			mutate: func(r *Request) { r.EvaluatorID = "" },
		},
		{
			name:   "missing content ID",
			mutate: func(r *Request) { r.Content.ContentID = "" },
		},
		{
			name:   "missing author ID",
			mutate: func(r *Request) { r.Content.AuthorID = "" },
		},
		{
			name:   "connection with empty follower",
			mutate: func(r *Request) { r.Connections[0].FromUserID = "" },
		},
		{
			name:   "NaN trust weight",
			mutate: func(r *Request) { r.Connections[0].TrustWeight = math.NaN() },
		},
		{
			name:   "infinite trust weight",
			mutate: func(r *Request) { r.Connections[0].TrustWeight = math.Inf(1) },
		},
		{
			name: "negative social distance",
			mutate: func(r *Request) {
				r.Interactions = []InteractionEvent{
					{UserID: "bob", ContentID: "rec-1", Type: InteractionUpvote, SocialDistance: -1, Timestamp: now},
				}
			},
		},
		{
			name:   "future-dated content",
			mutate: func(r *Request) { r.Content.CreatedAt = now.Add(time.Hour) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := valid()
			tt.mutate(&req)
			_, err := e.Score(context.Background(), req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Score() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestScoreCanceledContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Score(ctx, Request{
		EvaluatorID: "alice",
		Content:     ContentMetadata{ContentID: "rec-1", AuthorID: "bob"},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Score() error = %v, want context.Canceled", err)
	}
}

func TestScorePreservesRequestID(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	res, err := e.Score(context.Background(), Request{
		RequestID:   "req-42",
		EvaluatorID: "alice",
		Content:     ContentMetadata{ContentID: "rec-1", AuthorID: "alice", CreatedAt: now},
		Now:         now,
	})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if res.Metadata.RequestID != "req-42" {
		t.Errorf("Metadata.RequestID = %q, want req-42", res.Metadata.RequestID)
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	requests := []Request{
		{
			EvaluatorID: "alice",
			Content:     ContentMetadata{ContentID: "c", AuthorID: "alice", CreatedAt: now},
			Interactions: []InteractionEvent{
				{UserID: "b", ContentID: "c", Type: InteractionShare, SocialDistance: 0, Timestamp: now},
				{UserID: "d", ContentID: "c", Type: InteractionShare, SocialDistance: 0, Timestamp: now},
				{UserID: "f", ContentID: "c", Type: InteractionShare, SocialDistance: 0, Timestamp: now},
			},
			Now: now,
		},
		{
			EvaluatorID: "alice",
			Content:     ContentMetadata{ContentID: "c", AuthorID: "bob", CreatedAt: now.AddDate(-1, 0, 0)},
			Connections: []SocialConnection{{FromUserID: "alice", ToUserID: "bob"}},
			Interactions: []InteractionEvent{
				{UserID: "b", ContentID: "c", Type: InteractionDownvote, SocialDistance: 1, Timestamp: now.AddDate(0, 0, -300)},
				{UserID: "d", ContentID: "c", Type: InteractionDownvote, SocialDistance: 1, Timestamp: now.AddDate(0, 0, -300)},
			},
			Now: now,
		},
	}

	for i, req := range requests {
		res, err := e.Score(context.Background(), req)
		if err != nil {
			t.Fatalf("Score() request %d error = %v", i, err)
		}
		if res.FinalScore < 0 || res.FinalScore > 10 {
			t.Errorf("request %d: FinalScore = %f, outside [0, 10]", i, res.FinalScore)
		}
		if res.Confidence < 0.1 || res.Confidence > 1.0 {
			t.Errorf("request %d: Confidence = %f, outside [0.1, 1.0]", i, res.Confidence)
		}
	}
}
