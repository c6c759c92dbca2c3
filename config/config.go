package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/yknishimuta/nlpo-toolkit/cleaner"
	"github.com/yknishimuta/nlpo-toolkit/entities/corpus"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer"
	"github.com/yknishimuta/nlpo-toolkit/tokenizer/latin"
	"github.com/yknishimuta/nlpo-toolkit/wordlist"
)

// Filter defaults match the values the wordlist was tuned with.
const (
	DefaultMinLength   = 2
	DefaultMinFormFreq = 2
	DefaultMinTextFreq = 3
)

// BuildConfig mirrors the wordlist build YAML. Relative paths are resolved
// against the config file's directory at load time.
type BuildConfig struct {
	Inputs struct {
		ConlluDir      string   `yaml:"conllu_dir"`
		LatinTextDir   string   `yaml:"latin_text_dir"`
		ExtraWordlists []string `yaml:"extra_wordlists"`
	} `yaml:"inputs"`
	Output struct {
		LatinWordlistOut string `yaml:"latin_wordlist_out"`
	} `yaml:"output"`
	Filters struct {
		MinLength   int `yaml:"min_length"`
		MinFormFreq int `yaml:"min_form_freq"`
		MinTextFreq int `yaml:"min_text_freq"`
	} `yaml:"filters"`
	Tokenize struct {
		ExtraPunct string `yaml:"extra_punct"`
	} `yaml:"tokenize"`
}

func LoadBuildConfig(path string) (*BuildConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read build config")
	}

	cfg := &BuildConfig{}
	cfg.Filters.MinLength = DefaultMinLength
	cfg.Filters.MinFormFreq = DefaultMinFormFreq
	cfg.Filters.MinTextFreq = DefaultMinTextFreq

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse build config %s", path)
	}

	if cfg.Inputs.ConlluDir == "" {
		return nil, errors.Errorf("config: inputs.conllu_dir is required: %s", path)
	}
	if cfg.Inputs.LatinTextDir == "" {
		return nil, errors.Errorf("config: inputs.latin_text_dir is required: %s", path)
	}
	if cfg.Output.LatinWordlistOut == "" {
		return nil, errors.Errorf("config: output.latin_wordlist_out is required: %s", path)
	}

	base := filepath.Dir(path)
	cfg.Inputs.ConlluDir = resolve(base, cfg.Inputs.ConlluDir)
	cfg.Inputs.LatinTextDir = resolve(base, cfg.Inputs.LatinTextDir)
	for i, p := range cfg.Inputs.ExtraWordlists {
		cfg.Inputs.ExtraWordlists[i] = resolve(base, p)
	}
	cfg.Output.LatinWordlistOut = resolve(base, cfg.Output.LatinWordlistOut)

	return cfg, nil
}

// PipelineOptions turns the file-level config into the resolved options
// the pipeline consumes. Treebank lemmas and external wordlists get no
// frequency floor: a lemma is trusted annotation and a wordlist is a
// membership set.
func (c *BuildConfig) PipelineOptions() wordlist.Options {
	return wordlist.Options{
		TreebankDir:    c.Inputs.ConlluDir,
		TextDir:        c.Inputs.LatinTextDir,
		ExtraWordlists: c.Inputs.ExtraWordlists,
		OutputPath:     c.Output.LatinWordlistOut,
		Thresholds: wordlist.Thresholds{
			corpus.TreebankForm:  {MinLength: c.Filters.MinLength, MinFrequency: c.Filters.MinFormFreq},
			corpus.TreebankLemma: {MinLength: c.Filters.MinLength},
			corpus.RawText:       {MinLength: c.Filters.MinLength, MinFrequency: c.Filters.MinTextFreq},
			corpus.External:      {MinLength: c.Filters.MinLength},
		},
		Tokenizer: latin.NewTokenizer(&tokenizer.Options{ExtraPunct: c.Tokenize.ExtraPunct}),
	}
}

// CleanConfig mirrors the corpus cleaning YAML.
type CleanConfig struct {
	Kind                   string `yaml:"kind"`
	Input                  string `yaml:"input"`
	Output                 string `yaml:"output"`
	OutputFilenameTemplate string `yaml:"output_filename_template"`
	RefTSV                 string `yaml:"ref_tsv"`
	DocIDPrefix            string `yaml:"doc_id_prefix"`
	RulesPath              string `yaml:"rules_path"`
	LexiconMapPath         string `yaml:"lexicon_map_path"`
}

func LoadCleanConfig(path string) (*CleanConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read clean config")
	}

	cfg := &CleanConfig{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse clean config %s", path)
	}

	if cfg.Kind == "" {
		return nil, errors.Errorf("config: 'kind' is required in clean config: %s", path)
	}
	if cfg.Input == "" || cfg.Output == "" {
		return nil, errors.Errorf("config: 'input' and 'output' are required in clean config: %s", path)
	}

	base := filepath.Dir(path)
	cfg.Input = resolve(base, cfg.Input)
	cfg.Output = resolve(base, cfg.Output)
	if cfg.RefTSV != "" {
		cfg.RefTSV = resolve(base, cfg.RefTSV)
	}
	if cfg.RulesPath != "" {
		cfg.RulesPath = resolve(base, cfg.RulesPath)
		if _, err := os.Stat(cfg.RulesPath); err != nil {
			return nil, errors.Errorf("config: rules_path not found: %s", cfg.RulesPath)
		}
	}
	if cfg.LexiconMapPath != "" {
		cfg.LexiconMapPath = resolve(base, cfg.LexiconMapPath)
		if _, err := os.Stat(cfg.LexiconMapPath); err != nil {
			return nil, errors.Errorf("config: lexicon_map_path not found: %s", cfg.LexiconMapPath)
		}
	}

	return cfg, nil
}

// Job converts the clean config into the cleaner's resolved job value.
func (c *CleanConfig) Job() cleaner.Job {
	return cleaner.Job{
		Kind:             cleaner.Kind(c.Kind),
		Input:            c.Input,
		Output:           c.Output,
		FilenameTemplate: c.OutputFilenameTemplate,
		RefTSV:           c.RefTSV,
		DocIDPrefix:      c.DocIDPrefix,
		RulesPath:        c.RulesPath,
		LexiconMapPath:   c.LexiconMapPath,
	}
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
