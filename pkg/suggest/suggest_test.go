// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suggest

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"help", "help", 0},
		{"", "help", 4},
		{"help", "", 4},
		{"hep", "help", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"output", "outpu", 1},
		{"abc", "cba", 2},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "--verbose", "日本語"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestClosest(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "normalizes dashes",
			value:      "--hep",
			candidates: []string{"--help", "--version"},
			want:       "--help",
			wantOK:     true,
		},
		{
			name:       "too far",
			value:      "unknown",
			candidates: []string{"help", "version"},
		},
		{
			name:       "no candidates",
			value:      "help",
			candidates: nil,
		},
		{
			name:       "short against long spellings",
			value:      "-x",
			candidates: []string{"-v", "--verbose"},
			want:       "-v",
			wantOK:     true,
		},
		{
			name:       "tie keeps first candidate",
			value:      "bat",
			candidates: []string{"cat", "hat"},
			want:       "cat",
			wantOK:     true,
		},
		{
			name:       "exact threshold",
			value:      "buld",
			candidates: []string{"bxild"},
			want:       "bxild",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.value, tt.candidates)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Closest(%q, %v) = (%q, %v), want (%q, %v)", tt.value, tt.candidates, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
