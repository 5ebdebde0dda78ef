package textproc

import (
	"sort"
	"strings"
	"unicode/utf8"

	"SentimentScope/internal/domain/models"
)

const (
	DefaultTopN           = 10
	DefaultMinTokenLength = 3
)

// WordFrequency counts the non stop-word tokens of normalized text that are at
// least minLen runes long and returns the topN most frequent. Ties keep the
// order in which words were first seen.
func WordFrequency(text string, topN, minLen int) []models.WordCount {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) < minLen || IsStopword(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	out := make([]models.WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, models.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
