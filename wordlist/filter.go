package wordlist

import (
	"sort"
	"unicode/utf8"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

// Threshold is the retention floor for one source class. Lengths are
// measured in runes, not bytes.
type Threshold struct {
	MinLength    int
	MinFrequency int
}

// Thresholds maps each source class to its retention floor. Classes absent
// from the map are retained at any length and frequency.
type Thresholds map[corpus.SourceClass]Threshold

// Vocabulary filters each (token, class) entry against its class threshold
// and merges the survivors into one sorted, duplicate-free list. Retention
// is a union across classes: a token that clears the bar anywhere is kept.
// External wordlist entries carry no frequency signal, so only their length
// is checked.
func Vocabulary(table *FrequencyTable, thresholds Thresholds) []string {
	retained := map[string]bool{}

	for class, byToken := range table.counts {
		th := thresholds[class]
		for token, count := range byToken {
			if utf8.RuneCountInString(token) < th.MinLength {
				continue
			}
			if class != corpus.External && count < th.MinFrequency {
				continue
			}
			retained[token] = true
		}
	}

	words := make([]string, 0, len(retained))
	for word := range retained {
		words = append(words, word)
	}
	sort.Strings(words)

	return words
}
