package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yknishimuta/nlpo-toolkit/entities/languages"
)

// Latin ligatures are single letters to Unicode, so mark stripping leaves
// them alone. They are expanded before decomposition.
var ligatures = strings.NewReplacer(
	"æ", "ae",
	"Æ", "Ae",
	"œ", "oe",
	"Œ", "Oe",
)

// stripMarks decomposes, removes combining marks (multās -> multas), and
// recomposes. NFKD also folds compatibility forms like ﬁ -> fi. The chain
// buffers state between Transform calls, so a fresh one is built per use;
// sharing a package-level chain across goroutines corrupts it.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize canonicalizes a raw string into a comparable token key:
// ligatures expanded, diacritics stripped, lowercased, edge punctuation
// trimmed. The boolean is false when nothing token-like remains (empty
// input, or anything but letters after trimming). Normalize is pure,
// idempotent (feeding its output back in returns the same token) and safe
// for concurrent use.
func Normalize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	s = ligatures.Replace(s)
	if stripped, _, err := transform.String(stripMarks(), s); err == nil {
		s = stripped
	}
	s = cases.Lower(languages.Latin).String(s)
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r)
	})
	if s == "" {
		return "", false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}

	return s, true
}
