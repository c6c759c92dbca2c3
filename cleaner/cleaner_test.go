package cleaner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRulesYAML = `
remove_line_patterns:
  - pattern: 'CAPUT [IVXLC]+'
    name: chapter_heading
    ref: "Aristotle:Metaphys"
  - pattern: 'disabled rule'
    enabled: false

substitute_patterns:
  - pattern: '\[[0-9]+\]'
    repl: ""
    name: footnote_marker
    ref:
      author: Thomas
      work: Summa
      loc: I.q1
`

func loadSampleRules(t *testing.T) *RuleSet {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRulesYAML), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	return rules
}

func TestLoadRules(t *testing.T) {
	rules := loadSampleRules(t)

	require.Len(t, rules.RemoveLine, 1, "disabled rules must be skipped")
	require.Len(t, rules.Substitute, 1)

	assert.Equal(t, "chapter_heading", rules.RemoveLine[0].Name)
	assert.Equal(t, "Aristotle:Metaphys", rules.RemoveLine[0].Ref.Key)
	assert.Equal(t, "Aristotle", rules.RemoveLine[0].Ref.Author)
	assert.Equal(t, "Metaphys", rules.RemoveLine[0].Ref.Work)

	assert.Equal(t, "Thomas:Summa", rules.Substitute[0].Ref.Key)
	assert.Equal(t, "I.q1", rules.Substitute[0].Ref.Loc)
}

func TestCleanScholasticText(t *testing.T) {
	c := &Cleaner{Kind: KindScholasticText, Rules: loadSampleRules(t)}

	text := strings.Join([]string{
		"CAPUT I",
		"Quaestio prima [1] de veritate.",
		"",
		"",
		"",
		"Secunda  pars.",
	}, "\n")

	cleaned, events := c.Clean(text, "doc1")
	assert.Equal(t, "Quaestio prima de veritate.\n\nSecunda pars.\n", cleaned)

	require.Len(t, events, 2)
	assert.Equal(t, "drop_line", events[0].Action)
	assert.Equal(t, "chapter_heading", events[0].RuleName)
	assert.Equal(t, 1, events[0].LineNo)
	assert.Equal(t, "substitute", events[1].Action)
	assert.Equal(t, 1, events[1].MatchCount)
	assert.Equal(t, 2, events[1].LineNo)
	assert.Equal(t, "doc1", events[1].DocID)
}

func TestCleanCorpusCorporumSkipsHeader(t *testing.T) {
	c := &Cleaner{Kind: KindCorpusCorporum, Rules: &RuleSet{}}

	text := strings.Join([]string{
		"metadata: author",
		"metadata: work",
		"#####",
		"Gallia est\tomnis divisa.",
	}, "\n")

	cleaned, events := c.Clean(text, "doc2")
	assert.Equal(t, "Gallia est omnis divisa.\n", cleaned)
	assert.Empty(t, events)
}

func TestCleanRemoveLineMatchesFromLineStart(t *testing.T) {
	c := &Cleaner{Kind: KindScholasticText, Rules: loadSampleRules(t)}

	// The heading pattern occurs mid-line, so the line survives.
	cleaned, events := c.Clean("vide CAPUT II supra.", "doc3")
	assert.Equal(t, "vide CAPUT II supra.\n", cleaned)
	assert.Empty(t, events)
}

func TestCleanAppliesLexiconMap(t *testing.T) {
	c := &Cleaner{
		Kind:       KindScholasticText,
		LexiconMap: map[string]string{"ipsus": "ipse", "ipsum": "ipse"},
	}

	cleaned, _ := c.Clean("ipsus dixit, et ipsum vidimus.", "doc4")
	assert.Equal(t, "ipse dixit, et ipse vidimus.\n", cleaned)
}

func TestCleanUnknownKindRejectedByRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(src, []byte("text\n"), 0o644))

	err := Run(Job{Kind: "mystery", Input: src, Output: filepath.Join(dir, "out.txt")}, testLogger())
	assert.Error(t, err)
}
