// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import "testing"

// --- Test: Explain ---

func TestExplain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  *Result
		want string
	}{
		{
			name: "nil result",
			res:  nil,
			want: "",
		},
		{
			name: "own content",
			res: &Result{
				SocialPath: []PathNode{{UserID: "alice"}},
			},
			want: "Your own recommendation",
		},
		{
			name: "direct connection with quality and recency",
			res: &Result{
				SocialPath: []PathNode{{UserID: "alice"}, {UserID: "bob"}},
				Breakdown: Breakdown{
					QualitySignals: 1.1,
					RecencyFactor:  0.9,
				},
			},
			want: "Direct connection, Quality signals from your network, Recent activity",
		},
		{
			name: "friend of a friend with varied audience",
			res: &Result{
				SocialPath: []PathNode{{UserID: "alice"}, {UserID: "bob"}, {UserID: "carol"}},
				Breakdown: Breakdown{
					DiversityBonus: 0.2,
				},
			},
			want: "Friend of a friend, Endorsed by a varied audience",
		},
		{
			name: "unreachable author",
			res: &Result{
				Breakdown: Breakdown{RecencyFactor: 0.3},
			},
			want: "Outside your network",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Explain(tt.res); got != tt.want {
				t.Errorf("Explain() = %q, want %q", got, tt.want)
			}
		})
	}
}
