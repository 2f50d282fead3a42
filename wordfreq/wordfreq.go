// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package wordfreq counts whitespace-delimited word frequencies in text.
// Words are compared byte-for-byte; no case folding or Unicode
// normalization is applied.
package wordfreq

import (
	"sort"
	"strings"

	"github.com/lanekit/base/unsafex"
)

// Count returns the number of occurrences of each whitespace-delimited
// word in text. The returned map's keys share memory with text.
func Count(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(text) {
		counts[word]++
	}
	return counts
}

// CountBytes is Count for byte buffers. The buffer is scanned without
// copying; only the distinct words are cloned, so the returned map does
// not retain a reference to data.
func CountBytes(data []byte) map[string]int {
	// Count through unclonable views first. The cloning cannot be fused
	// into this loop: map assignment overwrites the stored key even when
	// the key is already present, so a previously cloned key would be
	// replaced by the view on the next occurrence.
	views := make(map[string]int)
	for _, word := range strings.Fields(unsafex.BytesToString(data)) {
		views[word]++
	}
	counts := make(map[string]int, len(views))
	for word, n := range views {
		counts[strings.Clone(word)] = n
	}
	return counts
}

// WordCount is one entry of a frequency ranking.
type WordCount struct {
	Word  string
	Count int
}

// Top returns the n most frequent entries of counts, most frequent first.
// Ties break lexicographically so the ranking is deterministic. If n
// exceeds the number of distinct words, all entries are returned.
func Top(counts map[string]int, n int) []WordCount {
	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{word, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
