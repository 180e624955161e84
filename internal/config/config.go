// Package config loads the YAML configuration that supplements an
// analysis run: path aliases, extra ignore patterns, and ignored
// directory names, in the same pattern-table shape kai-core's
// modulematch package uses for its module rules.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"loopscan/internal/resolve"
)

// AliasRule is one path-alias entry, loaded in file order; first match
// wins (see resolve.Options.Aliases).
type AliasRule struct {
	Pattern      string   `yaml:"pattern"`
	Replacements []string `yaml:"replacements"`
}

// File is the on-disk shape of a loopscan config file.
type File struct {
	BaseURL           string      `yaml:"baseUrl,omitempty"`
	Aliases           []AliasRule `yaml:"aliases,omitempty"`
	IgnoreDirs        []string    `yaml:"ignoreDirs,omitempty"`
	IgnorePatterns    []string    `yaml:"ignorePatterns,omitempty"`
	AllowedExtensions []string    `yaml:"allowedExtensions,omitempty"`
}

// Load reads and parses a loopscan YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &f, nil
}

// ResolveAliases converts the loaded alias table to the shape
// internal/resolve expects.
func (f *File) ResolveAliases() []resolve.AliasRule {
	out := make([]resolve.AliasRule, len(f.Aliases))
	for i, a := range f.Aliases {
		out[i] = resolve.AliasRule{Pattern: a.Pattern, Replacements: a.Replacements}
	}
	return out
}

// IgnoreDirSet returns IgnoreDirs as a lookup set, or nil if unset (the
// caller should then fall back to discover.DefaultIgnoredDirNames).
func (f *File) IgnoreDirSet() map[string]bool {
	if len(f.IgnoreDirs) == 0 {
		return nil
	}
	out := make(map[string]bool, len(f.IgnoreDirs))
	for _, d := range f.IgnoreDirs {
		out[d] = true
	}
	return out
}
