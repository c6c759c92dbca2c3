package cleaner

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// RuleRef is the provenance metadata attached to a cleaning rule. Rule
// files may give it either as a plain "Author:Work" string or as a mapping
// with key/author/work/loc fields.
type RuleRef struct {
	Key    string
	Author string
	Work   string
	Loc    string
}

func (r *RuleRef) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		s = strings.TrimSpace(s)
		r.Key = s
		if i := strings.Index(s, ":"); i >= 0 {
			r.Author = strings.TrimSpace(s[:i])
			r.Work = strings.TrimSpace(s[i+1:])
		}
		return nil
	}

	var m struct {
		Key    string `yaml:"key"`
		Author string `yaml:"author"`
		Work   string `yaml:"work"`
		Loc    string `yaml:"loc"`
	}
	if err := unmarshal(&m); err != nil {
		return err
	}
	r.Key = strings.TrimSpace(m.Key)
	r.Author = strings.TrimSpace(m.Author)
	r.Work = strings.TrimSpace(m.Work)
	r.Loc = strings.TrimSpace(m.Loc)
	if r.Key == "" && (r.Author != "" || r.Work != "") {
		r.Key = strings.Trim(r.Author+":"+r.Work, ":")
	}
	return nil
}

// LineRemoveRule drops an entire line when its pattern matches at the
// start of the stripped line.
type LineRemoveRule struct {
	Pattern *regexp.Regexp
	Ref     RuleRef
	Name    string
}

// SubstituteRule rewrites every occurrence of its pattern within a line.
type SubstituteRule struct {
	Pattern *regexp.Regexp
	Repl    string
	Ref     RuleRef
	Name    string
}

// RuleSet holds the compiled cleaning rules for one corpus kind.
type RuleSet struct {
	RemoveLine []LineRemoveRule
	Substitute []SubstituteRule
}

type ruleItem struct {
	Enabled *bool   `yaml:"enabled"`
	Pattern string  `yaml:"pattern"`
	Repl    string  `yaml:"repl"`
	Ref     RuleRef `yaml:"ref"`
	Name    string  `yaml:"name"`
}

func (i ruleItem) enabled() bool {
	return i.Enabled == nil || *i.Enabled
}

type ruleFile struct {
	RemoveLinePatterns []ruleItem `yaml:"remove_line_patterns"`
	SubstitutePatterns []ruleItem `yaml:"substitute_patterns"`
}

// LoadRules reads remove_line_patterns and substitute_patterns from a YAML
// rule file and compiles them. Items with enabled: false are skipped.
// Remove-line patterns are anchored to the start of the line; substitute
// patterns match anywhere.
func LoadRules(path string) (*RuleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cleaner: read rules")
	}

	var file ruleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "cleaner: parse rules %s", path)
	}

	rules := &RuleSet{}
	for _, item := range file.RemoveLinePatterns {
		if !item.enabled() {
			continue
		}
		pat, err := regexp.Compile("^(?:" + item.Pattern + ")")
		if err != nil {
			return nil, errors.Wrapf(err, "cleaner: bad remove pattern %q", item.Pattern)
		}
		rules.RemoveLine = append(rules.RemoveLine, LineRemoveRule{
			Pattern: pat,
			Ref:     item.Ref,
			Name:    item.Name,
		})
	}
	for _, item := range file.SubstitutePatterns {
		if !item.enabled() {
			continue
		}
		pat, err := regexp.Compile(item.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "cleaner: bad substitute pattern %q", item.Pattern)
		}
		rules.Substitute = append(rules.Substitute, SubstituteRule{
			Pattern: pat,
			Repl:    item.Repl,
			Ref:     item.Ref,
			Name:    item.Name,
		})
	}

	return rules, nil
}
