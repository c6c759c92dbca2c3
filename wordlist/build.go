package wordlist

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/yknishimuta/nlpo-toolkit/extractor"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer/latin"
)

// Options is the fully-resolved configuration for one pipeline run. The
// caller (config loader, CLI) does all path and YAML handling; nothing in
// here re-reads configuration.
type Options struct {
	TreebankDir    string
	TextDir        string
	ExtraWordlists []string
	OutputPath     string
	Thresholds     Thresholds
	Tokenizer      tokenizer.Interface
}

// Result carries the merged vocabulary and the per-source diagnostics
// accumulated along the way. An empty Words with empty Warnings means the
// inputs really were exhausted of qualifying tokens.
type Result struct {
	Words    []string
	Warnings []string
}

// Build runs the full extract -> count -> filter -> write pipeline.
//
// Extractors run concurrently, each accumulating into its own partial
// frequency table; the partials are summed afterwards, so the final counts
// do not depend on scheduling. Warnings are surfaced in extractor
// registration order regardless of completion order. Only a destination
// write failure is fatal; per-source and per-record problems degrade to
// warnings in the result.
func Build(opts Options) (*Result, error) {
	tok := opts.Tokenizer
	if tok == nil {
		tok = latin.NewTokenizer(nil)
	}

	extractors := []extractor.Extractor{
		&extractor.TreebankExtractor{Dir: opts.TreebankDir},
		&extractor.TextExtractor{Dir: opts.TextDir, Tokenizer: tok},
		&extractor.WordlistExtractor{Paths: opts.ExtraWordlists},
	}

	tables := make([]*FrequencyTable, len(extractors))
	warnings := make([][]string, len(extractors))

	var g errgroup.Group
	for i, ex := range extractors {
		i, ex := i, ex
		tables[i] = NewFrequencyTable()
		g.Go(func() error {
			warns, err := ex.Extract(tables[i].Observe)
			if err != nil {
				return errors.Wrapf(err, "extract %s", ex.Name())
			}
			warnings[i] = warns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := NewFrequencyTable()
	for _, partial := range tables {
		table.Merge(partial)
	}

	words := Vocabulary(table, opts.Thresholds)
	if err := Write(opts.OutputPath, words); err != nil {
		return nil, err
	}

	result := &Result{Words: words}
	for _, warns := range warnings {
		result.Warnings = append(result.Warnings, warns...)
	}

	return result, nil
}
