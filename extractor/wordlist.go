package extractor

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
	"github.com/yknishimuta/nlpo-toolkit/normalizer"
)

// WordlistExtractor reads externally supplied wordlists, one token per
// line. A wordlist is a membership set, not a frequency source: a token is
// observed once no matter how many lines repeat it, even across files.
type WordlistExtractor struct {
	Paths []string
}

func (e *WordlistExtractor) Name() string {
	return "extra-wordlist"
}

func (e *WordlistExtractor) Extract(emit func(corpus.Observation)) ([]string, error) {
	warnings := []string{}
	seen := map[string]bool{}

	for _, path := range e.Paths {
		f, err := os.Open(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("extra wordlist missing: %s", path))
			continue
		}

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			// Deduplicate on the normalized key so casing or diacritic
			// variants of the same entry still count once.
			token, ok := normalizer.Normalize(line)
			if !ok || seen[token] {
				continue
			}
			seen[token] = true
			emit(corpus.Observation{Token: line, Class: corpus.External})
		}
		if err := scanner.Err(); err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read %s: %v", path, err))
		}
		f.Close()
	}

	return warnings, nil
}
