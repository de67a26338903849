package analysis

import (
	"sort"
	"strings"
)

// WordCount pairs a word with how often it occurred.
type WordCount struct {
	Word  string
	Count int
}

// CountWords tallies word frequency across the cleaned titles, excluding
// stop words. The returned counts are ordered by first occurrence, which
// keeps downstream tie-breaking deterministic.
func CountWords(titles []string, stop StopWords) []WordCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, title := range titles {
		for _, word := range strings.Fields(title) {
			if stop.Contains(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	result := make([]WordCount, 0, len(order))
	for _, word := range order {
		result = append(result, WordCount{Word: word, Count: counts[word]})
	}

	return result
}

// TopN returns the n most frequent words, sorted by descending count. The
// sort is stable, so ties keep their first-seen order.
func TopN(counts []WordCount, n int) []WordCount {
	ranked := make([]WordCount, len(counts))
	copy(ranked, counts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}
