// Package discover walks a directory tree and returns a deterministic list
// of absolute file paths eligible for extraction.
package discover

// DefaultIgnoredDirNames are directory basenames never descended into,
// regardless of ignore patterns.
var DefaultIgnoredDirNames = []string{
	"node_modules", "dist", "build", ".git", "coverage", ".next", ".nuxt",
}

// Options configures a directory walk.
type Options struct {
	// AllowedExtensions restricts admitted files; nil means "ask the
	// extractor's own language table" (the four-language matrix).
	AllowedExtensions map[string]bool

	// IgnoredDirNames are directory basenames skipped entirely, without
	// descending. Defaults to DefaultIgnoredDirNames when nil.
	IgnoredDirNames map[string]bool

	// IgnorePatterns are glob-ish patterns (see Matcher) tested against
	// both the full path and the basename of every candidate entry.
	IgnorePatterns []string

	// FollowSymlinks enables descending into symlinked directories.
	// Default: false.
	FollowSymlinks bool
}

func (o Options) ignoredDirNames() map[string]bool {
	if o.IgnoredDirNames != nil {
		return o.IgnoredDirNames
	}
	out := make(map[string]bool, len(DefaultIgnoredDirNames))
	for _, n := range DefaultIgnoredDirNames {
		out[n] = true
	}
	return out
}
