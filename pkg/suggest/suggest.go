// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suggest proposes corrections for mistyped command and option
// names using Levenshtein edit distance.
package suggest

import "strings"

// MaxDistance is the largest edit distance at which Closest still
// returns a candidate.
const MaxDistance = 2

// Distance returns the Levenshtein edit distance between a and b.
// Insertions, deletions and substitutions each cost 1. Strings are
// compared rune by rune.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	dp := make([][]int, len(ra)+1)
	for i := range dp {
		dp[i] = make([]int, len(rb)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		dp[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			dp[i][j] = min(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}
	return dp[len(ra)][len(rb)]
}

// normalize strips any leading run of dashes so "--hep" and "hep"
// compare the same.
func normalize(s string) string {
	return strings.TrimLeft(s, "-")
}

// Closest returns the candidate nearest to value, provided its distance
// is at most MaxDistance. Leading dashes are ignored on both sides.
// When several candidates tie, the first one in candidates wins.
func Closest(value string, candidates []string) (string, bool) {
	target := normalize(value)

	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := Distance(normalize(c), target)
		if bestDist == -1 || d < bestDist {
			best = c
			bestDist = d
		}
	}

	if bestDist == -1 || bestDist > MaxDistance {
		return "", false
	}
	return best, true
}
