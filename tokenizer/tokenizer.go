package tokenizer

import (
	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

// Interface splits running text into lexical and non-lexical segments.
type Interface interface {
	Tokenize(text string) ([]*corpus.Word, error)
}

type Options struct {
	// ExtraPunct lists runes treated as segment breaks even when Unicode
	// classes them as letters. Editions that use letter-like separators
	// (interpuncts, soft hyphens carried over from OCR) set this.
	ExtraPunct string
}
