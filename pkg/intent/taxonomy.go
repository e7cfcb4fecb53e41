package intent

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

var (
	defaultTaxonomy     Taxonomy
	defaultTaxonomyOnce sync.Once
)

// Definition is one intent with its ordered trigger phrases.
type Definition struct {
	Name    Intent   `yaml:"name" json:"name"`
	Phrases []string `yaml:"phrases" json:"phrases"`
}

// Fallback promotes otherwise unmatched input to Intent when Pattern matches.
type Fallback struct {
	Intent  Intent `yaml:"intent" json:"intent"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

// Taxonomy is the declaration-ordered intent table shared by all strategies.
type Taxonomy struct {
	Default  Intent       `yaml:"default" json:"default"`
	Fallback Fallback     `yaml:"fallback" json:"fallback"`
	Intents  []Definition `yaml:"intents" json:"intents"`

	fallbackRe *regexp.Regexp
}

// DefaultTaxonomy returns the embedded taxonomy.
func DefaultTaxonomy() Taxonomy {
	defaultTaxonomyOnce.Do(func() {
		tax, err := ParseTaxonomy(defaultTaxonomyYAML)
		if err != nil {
			panic(fmt.Sprintf("intent: embedded taxonomy is invalid: %v", err))
		}
		defaultTaxonomy = tax
	})
	return defaultTaxonomy
}

// LoadTaxonomy reads a taxonomy YAML file from disk.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return ParseTaxonomy(data)
}

// ParseTaxonomy decodes and validates a taxonomy document.
func ParseTaxonomy(data []byte) (Taxonomy, error) {
	var tax Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return Taxonomy{}, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	if len(tax.Intents) == 0 {
		return Taxonomy{}, errors.New("taxonomy declares no intents")
	}
	if tax.Default == "" {
		tax.Default = GeneralQuery
	}

	seen := make(map[Intent]bool, len(tax.Intents))
	for _, def := range tax.Intents {
		if def.Name == "" {
			return Taxonomy{}, errors.New("taxonomy contains an intent without a name")
		}
		if seen[def.Name] {
			return Taxonomy{}, fmt.Errorf("intent %q declared twice", def.Name)
		}
		seen[def.Name] = true
	}

	if tax.Fallback.Pattern != "" {
		re, err := regexp.Compile(`(?i)` + tax.Fallback.Pattern)
		if err != nil {
			return Taxonomy{}, fmt.Errorf("invalid fallback pattern: %w", err)
		}
		if tax.Fallback.Intent == "" {
			return Taxonomy{}, errors.New("fallback pattern has no intent")
		}
		tax.fallbackRe = re
	}

	return tax, nil
}

// Names lists the declared intents in declaration order, followed by the
// default intent when it is not itself declared.
func (t Taxonomy) Names() []Intent {
	names := make([]Intent, 0, len(t.Intents)+1)
	hasDefault := false
	for _, def := range t.Intents {
		names = append(names, def.Name)
		if def.Name == t.Default {
			hasDefault = true
		}
	}
	if !hasDefault {
		names = append(names, t.Default)
	}
	return names
}

func (t Taxonomy) matchFallback(normalized string) (Intent, bool) {
	if t.fallbackRe == nil || !t.fallbackRe.MatchString(normalized) {
		return "", false
	}
	return t.Fallback.Intent, true
}
