package discover

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher tests candidate paths against a minimal glob subset: "*" matches
// any run of characters, including path separators (a greedy cross-
// directory match, unlike doublestar's own single-"*" segment semantics);
// "?" matches exactly one character. A pattern with neither wildcard is a
// substring-or-exact-basename test. A pattern matches if it matches either
// the full path or the basename.
type Matcher struct {
	patterns []string
}

// NewMatcher compiles a Matcher from raw ignore patterns.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: patterns}
}

// Match reports whether path should be ignored.
func (m *Matcher) Match(path string) bool {
	path = filepath.ToSlash(path)
	base := filepath.Base(path)

	for _, p := range m.patterns {
		if matchOne(p, path) || matchOne(p, base) {
			return true
		}
	}
	return false
}

func matchOne(pattern, candidate string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return candidate == pattern || strings.Contains(candidate, pattern)
	}

	globPattern := crossDirectoryGlob(pattern)
	matched, err := doublestar.Match(globPattern, candidate)
	return err == nil && matched
}

// crossDirectoryGlob rewrites single "*" runs to doublestar's "**" so a
// bare "*" crosses path separators, matching this package's documented
// semantics rather than doublestar's own single-segment "*".
func crossDirectoryGlob(pattern string) string {
	var b strings.Builder
	runStart := -1
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '*' {
			if runStart == -1 {
				runStart = i
			}
			continue
		}
		if runStart != -1 {
			b.WriteString("**")
			runStart = -1
		}
		b.WriteByte(pattern[i])
	}
	if runStart != -1 {
		b.WriteString("**")
	}
	return b.String()
}
