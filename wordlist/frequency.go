package wordlist

import (
	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
	"github.com/yknishimuta/nlpo-toolkit/normalizer"
)

// FrequencyTable accumulates occurrence counts for normalized tokens,
// partitioned by source class. Counts only ever grow, and merging is
// plain addition, so partial tables built independently combine to the
// same totals whatever the order.
type FrequencyTable struct {
	counts map[corpus.SourceClass]map[string]int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		counts: map[corpus.SourceClass]map[string]int{},
	}
}

// Observe normalizes a raw observation and counts it. Tokens the
// normalizer rejects are discarded.
func (t *FrequencyTable) Observe(obs corpus.Observation) {
	token, ok := normalizer.Normalize(obs.Token)
	if !ok {
		return
	}

	byToken := t.counts[obs.Class]
	if byToken == nil {
		byToken = map[string]int{}
		t.counts[obs.Class] = byToken
	}
	byToken[token]++
}

// Merge folds another table's counts into this one.
func (t *FrequencyTable) Merge(other *FrequencyTable) {
	for class, byToken := range other.counts {
		for token, count := range byToken {
			dst := t.counts[class]
			if dst == nil {
				dst = map[string]int{}
				t.counts[class] = dst
			}
			dst[token] += count
		}
	}
}

// Count reports the occurrences recorded for a token under a class.
func (t *FrequencyTable) Count(token string, class corpus.SourceClass) int {
	return t.counts[class][token]
}

// NumTokens reports how many distinct tokens a class has recorded.
func (t *FrequencyTable) NumTokens(class corpus.SourceClass) int {
	return len(t.counts[class])
}
