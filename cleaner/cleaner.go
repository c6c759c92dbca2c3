package cleaner

import (
	"regexp"
	"strings"
)

// Kind selects the cleaning profile for a corpus source.
type Kind string

const (
	// KindCorpusCorporum documents open with a metadata block terminated
	// by a line of five or more '#'; everything before it is discarded.
	KindCorpusCorporum Kind = "corpus_corporum"
	// KindScholasticText documents are cleaned whole.
	KindScholasticText Kind = "scholastic_text"
)

const snippetChars = 200

var (
	headerHashRe = regexp.MustCompile(`^\s*#{5,}\s*$`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	spaceRunRe   = regexp.MustCompile(` {2,}`)
)

// Cleaner applies a rule set and an optional lexicon map to documents of
// one kind.
type Cleaner struct {
	Kind       Kind
	Rules      *RuleSet
	LexiconMap map[string]string
}

// Clean runs the three cleaning layers over one document: structural rules
// (drop lines, substitutions), whitespace normalization, then the lexicon
// map. It returns the cleaned text, always terminated by a single newline,
// plus one RefEvent per rule hit for the audit log. Line numbers in events
// are 1-based relative to the processed region.
func (c *Cleaner) Clean(text, docID string) (string, []RefEvent) {
	rules := c.Rules
	if rules == nil {
		rules = &RuleSet{}
	}

	lines := strings.Split(text, "\n")

	start := 0
	if c.Kind == KindCorpusCorporum {
		for i, line := range lines {
			if headerHashRe.MatchString(line) {
				start = i + 1
				break
			}
		}
	}

	cleaned := make([]string, 0, len(lines)-start)
	events := []RefEvent{}

	for rel, line := range lines[start:] {
		lineNo := rel + 1
		stripped := strings.TrimSpace(line)

		dropped := false
		for _, rule := range rules.RemoveLine {
			if rule.Pattern.MatchString(stripped) {
				dropped = true
				events = append(events, newRefEvent(docID, c.Kind, rule.Name,
					"drop_line", lineNo, 1, rule.Ref, snippet(line)))
				break
			}
		}
		if dropped {
			continue
		}

		for _, rule := range rules.Substitute {
			// Count matches before substituting so only actual hits are logged.
			hits := len(rule.Pattern.FindAllStringIndex(line, -1))
			if hits == 0 {
				continue
			}
			line = rule.Pattern.ReplaceAllString(line, rule.Repl)
			events = append(events, newRefEvent(docID, c.Kind, rule.Name,
				"substitute", lineNo, hits, rule.Ref, snippet(stripped)))
		}

		if c.Kind == KindCorpusCorporum {
			line = strings.ReplaceAll(line, "\t", " ")
		}
		cleaned = append(cleaned, line)
	}

	out := strings.Join(cleaned, "\n")
	out = blankRunRe.ReplaceAllString(out, "\n\n")
	out = spaceRunRe.ReplaceAllString(out, " ")

	if len(c.LexiconMap) > 0 {
		out = ApplyLexiconMap(out, c.LexiconMap)
	}

	return strings.TrimSpace(out) + "\n", events
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) > snippetChars {
		return string(runes[:snippetChars])
	}
	return s
}
