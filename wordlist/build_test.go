package wordlist

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

// specimenCorpus lays out a small corpus on disk: treebank forms
// {rosa:5, rosae:1}, raw text {rosa:4, templum:3}, external {ignis}.
func specimenCorpus(t *testing.T) Options {
	t.Helper()
	root := t.TempDir()

	conlluDir := filepath.Join(root, "input", "treebank_latin")
	require.NoError(t, os.MkdirAll(conlluDir, 0o755))
	records := []string{}
	for i := 0; i < 5; i++ {
		records = append(records, "1\trosa\trosa\tNOUN")
	}
	records = append(records, "2\trosae\trosa\tNOUN", "")
	require.NoError(t, os.WriteFile(filepath.Join(conlluDir, "sample.conllu"),
		[]byte(strings.Join(records, "\n")), 0o644))

	textDir := filepath.Join(root, "input", "latin_texts")
	require.NoError(t, os.MkdirAll(textDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(textDir, "text1.txt"),
		[]byte("rosa rosa rosa rosa. templum templum templum.\n"), 0o644))

	extra := filepath.Join(root, "input", "perseus_lemmas.txt")
	require.NoError(t, os.WriteFile(extra, []byte("ignis\n"), 0o644))

	return Options{
		TreebankDir:    conlluDir,
		TextDir:        textDir,
		ExtraWordlists: []string{extra},
		OutputPath:     filepath.Join(root, "output", "latin_words.txt"),
		Thresholds: Thresholds{
			corpus.TreebankForm:  {MinLength: 2, MinFrequency: 2},
			corpus.TreebankLemma: {MinLength: 2, MinFrequency: 2},
			corpus.RawText:       {MinLength: 2, MinFrequency: 3},
			corpus.External:      {MinLength: 2},
		},
	}
}

func TestBuildSpecimen(t *testing.T) {
	opts := specimenCorpus(t)
	// Every treebank lemma in the specimen is rosa, so rosae stands or
	// falls on its form frequency alone: 1 < 2 excludes it.
	result, err := Build(opts)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"ignis", "rosa", "templum"}, result.Words)

	raw, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "ignis\nrosa\ntemplum\n", string(raw))
}

func TestBuildDeterministic(t *testing.T) {
	opts := specimenCorpus(t)

	_, err := Build(opts)
	require.NoError(t, err)
	first, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	_, err = Build(opts)
	require.NoError(t, err)
	second, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// A corpus big enough that the three extractors genuinely run side by side,
// with accented forms so every goroutine exercises the full normalization
// chain. Counts must come out the same as a run that cannot overlap.
func TestBuildParallelExtractionMatchesSerial(t *testing.T) {
	root := t.TempDir()

	conlluDir := filepath.Join(root, "treebank")
	require.NoError(t, os.MkdirAll(conlluDir, 0o755))
	textDir := filepath.Join(root, "texts")
	require.NoError(t, os.MkdirAll(textDir, 0o755))

	forms := []string{"rosā", "multās", "victōriās", "Cæsar", "Œconomia", "templum"}
	for f := 0; f < 20; f++ {
		var conllu, text strings.Builder
		for i := 0; i < 200; i++ {
			form := forms[i%len(forms)]
			conllu.WriteString("1\t" + form + "\t" + form + "\tNOUN\n")
			text.WriteString(form + " ")
		}
		name := "doc" + strconv.Itoa(f)
		require.NoError(t, os.WriteFile(filepath.Join(conlluDir, name+".conllu"),
			[]byte(conllu.String()), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(textDir, name+".txt"),
			[]byte(text.String()+"\n"), 0o644))
	}

	extra := filepath.Join(root, "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("ignis\nuīta\n"), 0o644))

	opts := Options{
		TreebankDir:    conlluDir,
		TextDir:        textDir,
		ExtraWordlists: []string{extra},
		OutputPath:     filepath.Join(root, "out", "latin_words.txt"),
		Thresholds: Thresholds{
			corpus.TreebankForm:  {MinLength: 2, MinFrequency: 2},
			corpus.TreebankLemma: {MinLength: 2, MinFrequency: 2},
			corpus.RawText:       {MinLength: 2, MinFrequency: 3},
			corpus.External:      {MinLength: 2},
		},
	}

	want := []string{"caesar", "ignis", "multas", "oeconomia", "rosa", "templum", "uita", "victorias"}
	for run := 0; run < 3; run++ {
		result, err := Build(opts)
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, want, result.Words, "run %d", run)
	}
}

func TestBuildPartialSourceTolerance(t *testing.T) {
	opts := specimenCorpus(t)
	full, err := Build(opts)
	require.NoError(t, err)

	// Dropping the external wordlist removes only its unique token.
	opts.ExtraWordlists = nil
	reduced, err := Build(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"ignis", "rosa", "templum"}, full.Words)
	assert.Equal(t, []string{"rosa", "templum"}, reduced.Words)
}

func TestBuildMissingSourcesWarnButSucceed(t *testing.T) {
	opts := specimenCorpus(t)
	root := t.TempDir()
	opts.TreebankDir = filepath.Join(root, "missing_treebank")
	opts.ExtraWordlists = []string{filepath.Join(root, "missing_list.txt")}

	result, err := Build(opts)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "conllu dir not found")
	assert.Contains(t, result.Warnings[1], "extra wordlist missing")
	assert.Equal(t, []string{"rosa", "templum"}, result.Words)
}

func TestBuildEmptyResultIsValid(t *testing.T) {
	root := t.TempDir()
	conlluDir := filepath.Join(root, "treebank")
	textDir := filepath.Join(root, "texts")
	require.NoError(t, os.MkdirAll(conlluDir, 0o755))
	require.NoError(t, os.MkdirAll(textDir, 0o755))

	out := filepath.Join(root, "out", "latin_words.txt")
	result, err := Build(Options{
		TreebankDir: conlluDir,
		TextDir:     textDir,
		OutputPath:  out,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Words)
	assert.Empty(t, result.Warnings)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestBuildUnwritableDestinationFails(t *testing.T) {
	opts := specimenCorpus(t)
	blocker := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	opts.OutputPath = filepath.Join(blocker, "latin_words.txt")

	_, err := Build(opts)
	assert.Error(t, err)
}
