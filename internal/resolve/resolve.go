package resolve

import (
	"path/filepath"
	"strings"
)

// Resolve maps a raw specifier, written in fromFile, to an absolute file
// path. It returns ok=false when no candidate exists on disk, which the
// caller treats as "external" rather than as an error: node_modules
// packages and genuinely missing files are indistinguishable from here.
//
// Decision tree (first match wins):
//
//  1. Relative ("./" or "../"): resolved against fromFile's directory.
//  2. Absolute: resolved against base_url/root directly.
//  3. Scoped bare specifier ("@scope/name/..."): only a matching alias
//     rescues it; no alias match means external.
//  4. Bare specifier: tried against aliases first, then against
//     base_url/root, since a bare specifier may be a root-relative import
//     in projects that configure one.
//
// Aliases are consulted before the generic base_url/root fallback because a
// pattern like "@/*" would otherwise be mistaken for a scoped external
// package.
func Resolve(fromFile, specifier string, opts Options) (string, bool) {
	switch {
	case strings.HasPrefix(specifier, "."):
		return resolveRelative(fromFile, specifier, opts)

	case filepath.IsAbs(specifier):
		return resolveBaseOrRoot(specifier, opts)

	case strings.HasPrefix(specifier, "@") && strings.Contains(specifier[1:], "/"):
		return resolveAlias(specifier, opts)

	default:
		if p, ok := resolveAlias(specifier, opts); ok {
			return p, true
		}
		return resolveBaseOrRoot(specifier, opts)
	}
}

func resolveRelative(fromFile, specifier string, opts Options) (string, bool) {
	dir := filepath.Dir(fromFile)
	candidate := filepath.Join(dir, specifier)
	return probe(candidate, opts.AllowedExtensions)
}

func resolveBaseOrRoot(specifier string, opts Options) (string, bool) {
	base := opts.BaseURL
	if base == "" {
		base = opts.Root
	}
	if base == "" {
		return "", false
	}
	candidate := filepath.Join(base, specifier)
	return probe(candidate, opts.AllowedExtensions)
}

func resolveAlias(specifier string, opts Options) (string, bool) {
	for _, rule := range opts.Aliases {
		if p, ok := tryAliasRule(rule, specifier, opts); ok {
			return p, true
		}
	}
	return "", false
}

func aliasBase(opts Options) string {
	if opts.BaseURL != "" {
		return opts.BaseURL
	}
	return opts.Root
}

// tryAliasRule tests a single alias rule against specifier, trying each of
// its replacement templates in order until one probes to a real file.
func tryAliasRule(rule AliasRule, specifier string, opts Options) (string, bool) {
	base := aliasBase(opts)

	if strings.HasSuffix(rule.Pattern, "/*") {
		prefix := strings.TrimSuffix(rule.Pattern, "/*")
		if !strings.HasPrefix(specifier, prefix+"/") {
			return "", false
		}
		tail := strings.TrimPrefix(specifier, prefix+"/")

		for _, repl := range rule.Replacements {
			var candidatePath string
			if strings.HasSuffix(repl, "/*") {
				candidatePath = strings.TrimSuffix(repl, "/*") + "/" + tail
			} else {
				candidatePath = repl + "/" + tail
			}
			full := filepath.Join(base, candidatePath)
			if resolved, ok := probe(full, opts.AllowedExtensions); ok {
				return resolved, true
			}
		}
		return "", false
	}

	matched := false
	remainder := ""
	switch {
	case specifier == rule.Pattern:
		matched = true
	case strings.HasPrefix(specifier, rule.Pattern+"/"):
		matched = true
		remainder = strings.TrimPrefix(specifier, rule.Pattern+"/")
	}
	if !matched {
		return "", false
	}

	for _, repl := range rule.Replacements {
		candidatePath := repl
		if remainder != "" {
			candidatePath = repl + "/" + remainder
		}
		full := filepath.Join(base, candidatePath)
		if resolved, ok := probe(full, opts.AllowedExtensions); ok {
			return resolved, true
		}
	}
	return "", false
}
