package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

func observeAll(t *FrequencyTable, class corpus.SourceClass, tokens ...string) {
	for _, token := range tokens {
		t.Observe(corpus.Observation{Token: token, Class: class})
	}
}

func TestFrequencyTableObserveNormalizes(t *testing.T) {
	table := NewFrequencyTable()
	observeAll(table, corpus.RawText, "Rosa", "rosa,", "rosā")

	assert.Equal(t, 3, table.Count("rosa", corpus.RawText))
	assert.Equal(t, 0, table.Count("Rosa", corpus.RawText))
}

func TestFrequencyTableRejectsNonTokens(t *testing.T) {
	table := NewFrequencyTable()
	observeAll(table, corpus.RawText, "123", "...", "")

	assert.Equal(t, 0, table.NumTokens(corpus.RawText))
}

func TestFrequencyTableCountsPerClass(t *testing.T) {
	table := NewFrequencyTable()
	observeAll(table, corpus.TreebankForm, "rosa")
	observeAll(table, corpus.TreebankLemma, "rosa", "rosa")

	assert.Equal(t, 1, table.Count("rosa", corpus.TreebankForm))
	assert.Equal(t, 2, table.Count("rosa", corpus.TreebankLemma))
	assert.Equal(t, 0, table.Count("rosa", corpus.RawText))
}

func TestFrequencyTableMergeCommutes(t *testing.T) {
	a := NewFrequencyTable()
	observeAll(a, corpus.RawText, "rosa", "rosa", "templum")
	b := NewFrequencyTable()
	observeAll(b, corpus.RawText, "rosa")
	observeAll(b, corpus.TreebankForm, "ignis")

	ab := NewFrequencyTable()
	ab.Merge(a)
	ab.Merge(b)

	ba := NewFrequencyTable()
	ba.Merge(b)
	ba.Merge(a)

	for _, table := range []*FrequencyTable{ab, ba} {
		assert.Equal(t, 3, table.Count("rosa", corpus.RawText))
		assert.Equal(t, 1, table.Count("templum", corpus.RawText))
		assert.Equal(t, 1, table.Count("ignis", corpus.TreebankForm))
	}
}
