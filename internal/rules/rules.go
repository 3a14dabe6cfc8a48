// Package rules holds the keyword rule tables driving tag extraction and the
// natural-language needs interpreter. The ruleset is data, not code: it ships
// as versioned YAML so it can be tested and extended without touching the
// filter engine.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// NeedsCategory maps free-text trigger substrings to a support keyword set.
// Multiple categories may fire for one input; within a category the first
// matching trigger fires the whole keyword set.
type NeedsCategory struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
	Keywords []string `yaml:"keywords"`
}

// StageRule expands a company-stage label into search keywords.
type StageRule struct {
	Stage    string   `yaml:"stage"`
	Keywords []string `yaml:"keywords"`
}

// TagRule derives a tag when any trigger substring occurs in the text.
type TagRule struct {
	Tag      string   `yaml:"tag"`
	Triggers []string `yaml:"triggers"`
}

type Table struct {
	Version            int             `yaml:"version"`
	Needs              []NeedsCategory `yaml:"needs"`
	Stages             []StageRule     `yaml:"stages"`
	Targets            []TagRule       `yaml:"targets"`
	SupportTypes       []TagRule       `yaml:"support_types"`
	DefaultSupportType string          `yaml:"default_support_type"`
}

func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse rules YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(data)
}

// Default returns the ruleset embedded in the binary.
func Default() *Table {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded ruleset is invalid: %v", err))
	}
	return t
}

func (t *Table) Validate() error {
	if t.Version < 1 {
		return fmt.Errorf("rules version must be >= 1, got %d", t.Version)
	}
	for _, c := range t.Needs {
		if c.Name == "" {
			return fmt.Errorf("needs category has no name")
		}
		if len(c.Triggers) == 0 || len(c.Keywords) == 0 {
			return fmt.Errorf("needs category %q must have triggers and keywords", c.Name)
		}
	}
	for _, s := range t.Stages {
		if s.Stage == "" || len(s.Keywords) == 0 {
			return fmt.Errorf("stage rule %q must have a stage and keywords", s.Stage)
		}
	}
	for _, r := range append(append([]TagRule{}, t.Targets...), t.SupportTypes...) {
		if r.Tag == "" || len(r.Triggers) == 0 {
			return fmt.Errorf("tag rule %q must have a tag and triggers", r.Tag)
		}
	}
	if t.DefaultSupportType == "" {
		return fmt.Errorf("default_support_type is required")
	}
	return nil
}

// NeedsKeywords interprets free text against the needs categories and unions
// the keyword sets of every category whose trigger occurs in the text.
// Empty input or no match yields an empty set.
func (t *Table) NeedsKeywords(input string) []string {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return nil
	}

	var keywords []string
	seen := make(map[string]bool)
	for _, c := range t.Needs {
		for _, trigger := range c.Triggers {
			if strings.Contains(text, strings.ToLower(trigger)) {
				for _, kw := range c.Keywords {
					if !seen[kw] {
						seen[kw] = true
						keywords = append(keywords, kw)
					}
				}
				break
			}
		}
	}
	return keywords
}

// StageKeywords expands stage labels into their search keyword union.
func (t *Table) StageKeywords(stages []string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, stage := range stages {
		for _, rule := range t.Stages {
			if rule.Stage != stage {
				continue
			}
			for _, kw := range rule.Keywords {
				if !seen[kw] {
					seen[kw] = true
					keywords = append(keywords, kw)
				}
			}
		}
	}
	return keywords
}

// TargetTags extracts target-audience tags from free text.
func (t *Table) TargetTags(text string) []string {
	return matchTags(t.Targets, text)
}

// SupportTypeTags extracts support-type tags from free text, falling back to
// the placeholder tag when nothing matches.
func (t *Table) SupportTypeTags(text string) []string {
	tags := matchTags(t.SupportTypes, text)
	if len(tags) == 0 {
		return []string{t.DefaultSupportType}
	}
	return tags
}

func matchTags(ruleset []TagRule, text string) []string {
	lowered := strings.ToLower(text)

	var tags []string
	for _, rule := range ruleset {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lowered, strings.ToLower(trigger)) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}
	return tags
}
