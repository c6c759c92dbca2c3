package cleaner

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Job is the fully-resolved configuration for one cleaning run. All paths
// are absolute by the time a Job reaches Run; the config loader handles
// resolution.
type Job struct {
	Kind             Kind
	Input            string
	Output           string
	FilenameTemplate string
	RefTSV           string
	DocIDPrefix      string
	RulesPath        string
	LexiconMapPath   string
}

// Run cleans a single file, or every .txt file in a directory when Input
// is a directory. Output filenames in directory mode follow the template
// ({index}, {stem}, {ext}); without a template the original names are
// kept. When stems are unique the default "{stem}.cleaned.{ext}" is used
// instead of the configured template, matching single-source layouts.
func Run(job Job, log *logrus.Logger) error {
	switch job.Kind {
	case KindCorpusCorporum, KindScholasticText:
	default:
		return errors.Errorf("cleaner: unknown kind %q", job.Kind)
	}

	c := &Cleaner{Kind: job.Kind}
	if job.RulesPath != "" {
		rules, err := LoadRules(job.RulesPath)
		if err != nil {
			return err
		}
		c.Rules = rules
	}
	if job.LexiconMapPath != "" {
		mapping, err := LoadLexiconMap(job.LexiconMapPath)
		if err != nil {
			return err
		}
		c.LexiconMap = mapping
	}

	info, err := os.Stat(job.Input)
	if err != nil {
		return errors.Wrap(err, "cleaner: input not found")
	}

	if !info.IsDir() {
		dst := job.Output
		if outInfo, err := os.Stat(job.Output); err == nil && outInfo.IsDir() {
			dst = filepath.Join(job.Output, filepath.Base(job.Input))
		}
		return cleanSingleFile(c, job, job.Input, dst, log)
	}

	if outInfo, err := os.Stat(job.Output); err == nil && !outInfo.IsDir() {
		return errors.Errorf("cleaner: input %s is a directory, output must be one too: %s",
			job.Input, job.Output)
	}
	if err := os.MkdirAll(job.Output, 0o755); err != nil {
		return errors.Wrap(err, "cleaner: create output directory")
	}

	entries, err := os.ReadDir(job.Input)
	if err != nil {
		return errors.Wrap(err, "cleaner: list input directory")
	}

	sources := []string{}
	stems := map[string]bool{}
	dupStems := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			log.WithField("file", entry.Name()).Info("skipping non-.txt file")
			continue
		}
		sources = append(sources, filepath.Join(job.Input, entry.Name()))
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if stems[stem] {
			dupStems = true
		}
		stems[stem] = true
	}
	sort.Strings(sources)

	template := ""
	if job.FilenameTemplate != "" {
		if dupStems {
			template = job.FilenameTemplate
		} else {
			template = "{stem}.cleaned.{ext}"
		}
	}

	for idx, src := range sources {
		name := filepath.Base(src)
		if template != "" {
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			ext := strings.TrimPrefix(filepath.Ext(name), ".")
			name = expandTemplate(template, idx+1, stem, ext)
		}
		dst := filepath.Join(job.Output, name)
		if err := cleanSingleFile(c, job, src, dst, log); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"kind":   string(job.Kind),
		"files":  len(sources),
		"input":  job.Input,
		"output": job.Output,
	}).Info("cleaned directory")

	return nil
}

func cleanSingleFile(c *Cleaner, job Job, src, dst string, log *logrus.Logger) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "cleaner: read input")
	}

	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	docID := stem
	if job.DocIDPrefix != "" {
		docID = job.DocIDPrefix + ":" + stem
	}

	cleaned, events := c.Clean(string(raw), docID)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(err, "cleaner: create output directory")
	}
	if err := os.WriteFile(dst, []byte(cleaned), 0o644); err != nil {
		return errors.Wrap(err, "cleaner: write output")
	}

	if job.RefTSV != "" {
		if err := AppendRefEvents(job.RefTSV, events); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"kind":   string(job.Kind),
		"input":  src,
		"output": dst,
	}).Info("cleaned")

	return nil
}

// {index} accepts an optional zero-pad width, e.g. {index:03d}.
var indexVarRe = regexp.MustCompile(`\{index(?::0(\d+)d)?\}`)

func expandTemplate(template string, index int, stem, ext string) string {
	name := indexVarRe.ReplaceAllStringFunc(template, func(m string) string {
		sub := indexVarRe.FindStringSubmatch(m)
		if sub[1] != "" {
			return fmt.Sprintf("%0*d", atoiOr(sub[1], 0), index)
		}
		return fmt.Sprintf("%d", index)
	})
	name = strings.ReplaceAll(name, "{stem}", stem)
	name = strings.ReplaceAll(name, "{ext}", ext)
	return name
}

func atoiOr(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}
