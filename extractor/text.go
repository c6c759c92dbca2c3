package extractor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer/latin"
)

// TextExtractor walks a directory of plain-text files and emits one
// (token, raw-text) observation per lexical word occurrence.
type TextExtractor struct {
	Dir       string
	Tokenizer tokenizer.Interface
}

func (e *TextExtractor) Name() string {
	return "latin-text"
}

func (e *TextExtractor) Extract(emit func(corpus.Observation)) ([]string, error) {
	if e.Dir == "" {
		return nil, errors.New("extractor: text directory not configured")
	}

	tok := e.Tokenizer
	if tok == nil {
		tok = latin.NewTokenizer(nil)
	}

	warnings := []string{}
	if info, err := os.Stat(e.Dir); err != nil || !info.IsDir() {
		return append(warnings, fmt.Sprintf("text dir not found: %s", e.Dir)), nil
	}

	walkErr := filepath.WalkDir(e.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", path, err))
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".txt") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", path, err))
			return nil
		}
		text := string(raw)
		if !utf8.ValidString(text) {
			warnings = append(warnings, fmt.Sprintf("invalid utf-8 in %s: bad bytes dropped", path))
			text = strings.ToValidUTF8(text, "")
		}
		words, err := tok.Tokenize(text)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot tokenize %s: %v", path, err))
			return nil
		}
		for _, word := range words {
			if !word.Lexical {
				continue
			}
			emit(corpus.Observation{Token: word.Word, Class: corpus.RawText})
		}
		return nil
	})
	if walkErr != nil {
		warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", e.Dir, walkErr))
	}

	return warnings, nil
}
