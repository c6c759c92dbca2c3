package extractor

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

// CoNLL-U column layout: ID FORM LEMMA UPOS XPOS FEATS HEAD DEPREL DEPS MISC.
// Only FORM and LEMMA are consumed, so a record needs at least three columns.
const (
	conlluFormCol  = 1
	conlluLemmaCol = 2
	conlluMinCols  = 3
)

// Long lines show up in treebanks with whole-document MISC annotations.
const scannerBufSize = 4 * 1024 * 1024

// TreebankExtractor walks a directory of CoNLL-U files and emits a
// (form, treebank-form) and a (lemma, treebank-lemma) observation per
// valid record.
type TreebankExtractor struct {
	Dir string
}

func (e *TreebankExtractor) Name() string {
	return "treebank"
}

func (e *TreebankExtractor) Extract(emit func(corpus.Observation)) ([]string, error) {
	if e.Dir == "" {
		return nil, errors.New("extractor: treebank directory not configured")
	}

	warnings := []string{}
	if info, err := os.Stat(e.Dir); err != nil || !info.IsDir() {
		return append(warnings, fmt.Sprintf("conllu dir not found: %s", e.Dir)), nil
	}

	walkErr := filepath.WalkDir(e.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", path, err))
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, ".conllu") {
			return nil
		}
		if warn := extractConlluFile(path, emit); warn != "" {
			warnings = append(warnings, warn)
		}
		return nil
	})
	if walkErr != nil {
		warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", e.Dir, walkErr))
	}

	return warnings, nil
}

// extractConlluFile scans one file, skipping blank lines, comments and
// records with too few columns. It returns a warning string when the file
// itself is unreadable, "" otherwise.
func extractConlluFile(path string, emit func(corpus.Observation)) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("cannot read %s: %v", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < conlluMinCols {
			continue
		}
		emit(corpus.Observation{Token: cols[conlluFormCol], Class: corpus.TreebankForm})
		emit(corpus.Observation{Token: cols[conlluLemmaCol], Class: corpus.TreebankLemma})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Sprintf("cannot read %s: %v", path, err)
	}

	return ""
}
