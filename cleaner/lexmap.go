package cleaner

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// LoadLexiconMap reads a word mapping file, one "from<TAB>to" pair per
// line. Blank lines and '#' comments are skipped; a data line without two
// tab-separated fields is an error.
func LoadLexiconMap(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cleaner: read lexicon map")
	}
	defer f.Close()

	mapping := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			return nil, fmt.Errorf("cleaner: bad lexicon map row (need 'from\\tto'): %q", line)
		}
		src := strings.TrimSpace(parts[0])
		dst := strings.TrimSpace(parts[1])
		if src == "" {
			continue
		}
		mapping[src] = dst
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cleaner: read lexicon map")
	}

	return mapping, nil
}

// ApplyLexiconMap rewrites mapped words on word boundaries. Longer keys
// are matched first so an entry never clobbers a longer entry it prefixes.
func ApplyLexiconMap(text string, mapping map[string]string) string {
	if text == "" || len(mapping) == 0 {
		return text
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	pat := regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)

	return pat.ReplaceAllStringFunc(text, func(m string) string {
		if to, ok := mapping[m]; ok {
			return to
		}
		return m
	})
}
