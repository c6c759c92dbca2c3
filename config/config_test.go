package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
)

var sampleBuildYAML = `
inputs:
    conllu_dir: "input/treebank_latin"
    latin_text_dir: "input/latin_texts"
    extra_wordlists:
        - "input/perseus_lemmas.txt"

output:
    latin_wordlist_out: "output/latin_words.txt"

filters:
    min_length: 3
    min_form_freq: 2
    min_text_freq: 4

tokenize:
    extra_punct: ""
`

func TestLoadBuildConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin_wordlist.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleBuildYAML), 0o644))

	cfg, err := LoadBuildConfig(path)
	require.NoError(t, err)

	// Relative paths resolve against the config file's directory.
	assert.Equal(t, filepath.Join(dir, "input", "treebank_latin"), cfg.Inputs.ConlluDir)
	assert.Equal(t, filepath.Join(dir, "input", "latin_texts"), cfg.Inputs.LatinTextDir)
	require.Len(t, cfg.Inputs.ExtraWordlists, 1)
	assert.Equal(t, filepath.Join(dir, "input", "perseus_lemmas.txt"), cfg.Inputs.ExtraWordlists[0])
	assert.Equal(t, filepath.Join(dir, "output", "latin_words.txt"), cfg.Output.LatinWordlistOut)

	opts := cfg.PipelineOptions()
	assert.Equal(t, 3, opts.Thresholds[corpus.TreebankForm].MinLength)
	assert.Equal(t, 2, opts.Thresholds[corpus.TreebankForm].MinFrequency)
	assert.Equal(t, 4, opts.Thresholds[corpus.RawText].MinFrequency)
	// Lemmas and external entries carry no frequency floor.
	assert.Equal(t, 0, opts.Thresholds[corpus.TreebankLemma].MinFrequency)
	assert.Equal(t, 0, opts.Thresholds[corpus.External].MinFrequency)
	assert.NotNil(t, opts.Tokenizer)
}

func TestLoadBuildConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin_wordlist.yml")
	minimal := "inputs:\n    conllu_dir: tb\n    latin_text_dir: txt\noutput:\n    latin_wordlist_out: out.txt\n"
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))

	cfg, err := LoadBuildConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMinLength, cfg.Filters.MinLength)
	assert.Equal(t, DefaultMinFormFreq, cfg.Filters.MinFormFreq)
	assert.Equal(t, DefaultMinTextFreq, cfg.Filters.MinTextFreq)
}

func TestLoadBuildConfigMissingInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin_wordlist.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n    latin_wordlist_out: out.txt\n"), 0o644))

	_, err := LoadBuildConfig(path)
	assert.Error(t, err)
}

func TestLoadCleanConfig(t *testing.T) {
	dir := t.TempDir()
	rules := filepath.Join(dir, "rules.yml")
	require.NoError(t, os.WriteFile(rules, []byte("remove_line_patterns: []\n"), 0o644))

	path := filepath.Join(dir, "clean.yml")
	yaml := "kind: corpus_corporum\ninput: input\noutput: output\nrules_path: rules.yml\ndoc_id_prefix: TEST\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadCleanConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "input"), cfg.Input)
	assert.Equal(t, filepath.Join(dir, "output"), cfg.Output)
	assert.Equal(t, rules, cfg.RulesPath)

	job := cfg.Job()
	assert.Equal(t, "TEST", job.DocIDPrefix)
	assert.Equal(t, "corpus_corporum", string(job.Kind))
}

func TestLoadCleanConfigRequiredFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.yml")
	require.NoError(t, os.WriteFile(path, []byte("input: in\noutput: out\n"), 0o644))

	_, err := LoadCleanConfig(path)
	assert.Error(t, err, "'kind' is required")
}

func TestLoadCleanConfigMissingRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.yml")
	yaml := "kind: scholastic_text\ninput: in\noutput: out\nrules_path: nope.yml\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := LoadCleanConfig(path)
	assert.Error(t, err)
}
