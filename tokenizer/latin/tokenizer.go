package latin

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer"
)

type latinTokenizer struct {
	Options *tokenizer.Options
}

func NewTokenizer(options *tokenizer.Options) tokenizer.Interface {
	if options == nil {
		options = &tokenizer.Options{}
	}
	return &latinTokenizer{
		Options: options,
	}
}

// Tokenize splits text into maximal runs of letters (lexical) and runs of
// everything else (non-lexical). Latin is written with word separators, so
// no dictionary lookup is needed; the whole alphabet including medieval
// extensions falls under unicode.IsLetter.
func (t *latinTokenizer) Tokenize(text string) ([]*corpus.Word, error) {
	words := []*corpus.Word{}

	if !utf8.ValidString(text) {
		return []*corpus.Word{}, errors.New("tokenizer: invalid UTF-8 sequence")
	}

	lexical := func(r rune) bool {
		return unicode.IsLetter(r) && !strings.ContainsRune(t.Options.ExtraPunct, r)
	}

	var segment strings.Builder
	segLexical := false

	flush := func() {
		if segment.Len() == 0 {
			return
		}
		words = append(words, &corpus.Word{
			Word:    segment.String(),
			Lexical: segLexical,
		})
		segment.Reset()
	}

	for _, r := range text {
		if lex := lexical(r); segment.Len() == 0 || lex != segLexical {
			flush()
			segLexical = lex
		}
		segment.WriteRune(r)
	}
	flush()

	return words, nil
}
