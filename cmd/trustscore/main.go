// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

// Package main is the trustscore command line tool.
//
// trustscore reads a JSON dataset describing an evaluator's social
// graph, a set of interaction events, and one or more content items,
// then computes personalized trust scores and writes them as JSON.
//
// # Dataset format
//
//	{
//	  "evaluator_id": "alice",
//	  "connections": [
//	    {"from_user_id": "alice", "to_user_id": "bob"}
//	  ],
//	  "interactions": [
//	    {"user_id": "bob", "content_id": "rec-1", "interaction_type": "save",
//	     "timestamp": "2026-08-01T12:00:00Z", "social_distance": 1}
//	  ],
//	  "content": [
//	    {"content_id": "rec-1", "author_id": "bob",
//	     "created_at": "2026-07-30T09:00:00Z", "category": "restaurant"}
//	  ]
//	}
//
// # Example usage
//
// Score every content item in the dataset, ranked by trust:
//
//	trustscore -input dinner-feed.json
//
// Score a single content item:
//
//	trustscore -input dinner-feed.json -content rec-1
//
// Read the dataset from stdin and pretty-print the results:
//
//	cat dinner-feed.json | trustscore -pretty
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (TRUST_*, LOG_*)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/OmeoneChain/omeonechain-sub013/internal/config"
	"github.com/OmeoneChain/omeonechain-sub013/internal/logging"
	"github.com/OmeoneChain/omeonechain-sub013/internal/trust"
)

// dataset is the JSON input document.
type dataset struct {
	EvaluatorID  string                   `json:"evaluator_id"`
	Connections  []trust.SocialConnection `json:"connections"`
	Interactions []trust.InteractionEvent `json:"interactions"`
	Content      []trust.ContentMetadata  `json:"content"`
}

// scoredContent is one JSON output entry.
type scoredContent struct {
	ContentID   string           `json:"content_id"`
	FinalScore  float64          `json:"final_score"`
	Category    trust.Category   `json:"category"`
	Trusted     bool             `json:"trusted"`
	Confidence  float64          `json:"confidence"`
	Breakdown   trust.Breakdown  `json:"breakdown"`
	SocialPath  []trust.PathNode `json:"social_path,omitempty"`
	Explanation string           `json:"explanation"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logging.Error().Err(err).Msg("trustscore failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("trustscore", flag.ContinueOnError)
	inputPath := fs.String("input", "-", "dataset file path, or - for stdin")
	contentID := fs.String("content", "", "score only this content ID instead of ranking all")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logging.Init(cfg.Logging)

	ds, err := readDataset(*inputPath, stdin)
	if err != nil {
		return err
	}
	if len(ds.Content) == 0 {
		return fmt.Errorf("dataset has no content to score")
	}

	engine, err := trust.NewEngine(&cfg.Trust, logging.Logger())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	session, err := engine.NewSession(ds.EvaluatorID, ds.Connections)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	results, err := score(context.Background(), session, ds, *contentID)
	if err != nil {
		return err
	}

	out := make([]scoredContent, len(results))
	for i, res := range results {
		out[i] = scoredContent{
			ContentID:   res.Metadata.ContentID,
			FinalScore:  res.FinalScore,
			Category:    trust.Categorize(res.FinalScore),
			Trusted:     engine.MeetsTrustThreshold(res.FinalScore),
			Confidence:  res.Confidence,
			Breakdown:   res.Breakdown,
			SocialPath:  res.SocialPath,
			Explanation: trust.Explain(res),
		}
	}

	return writeResults(stdout, out, *pretty)
}

// readDataset decodes the input document from a file or stdin.
func readDataset(path string, stdin io.Reader) (*dataset, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer f.Close()
		r = f
	}

	var ds dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}

// score ranks the whole dataset, or scores the one requested item.
func score(ctx context.Context, session *trust.Session, ds *dataset, contentID string) ([]*trust.Result, error) {
	if contentID == "" {
		results, err := session.Rank(ctx, ds.Content, ds.Interactions)
		if err != nil {
			return nil, fmt.Errorf("rank content: %w", err)
		}
		return results, nil
	}

	for i := range ds.Content {
		if ds.Content[i].ContentID != contentID {
			continue
		}
		res, err := session.Score(ctx, ds.Content[i], ds.Interactions)
		if err != nil {
			return nil, fmt.Errorf("score content %q: %w", contentID, err)
		}
		return []*trust.Result{res}, nil
	}
	return nil, fmt.Errorf("content %q not found in dataset", contentID)
}

func writeResults(w io.Writer, out []scoredContent, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
