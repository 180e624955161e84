// Package resolve maps a module specifier plus its importing context to an
// absolute path of a file in the same tree, following the layered
// resolution policy: relative, path-alias, base-URL, extensionless,
// index-file, and compiled-extension-remap conventions.
package resolve

// AliasRule is one entry of a path-alias table (the tsconfig.json "paths"
// shape): a pattern, which may end in "/*" for a wildcard prefix match, and
// one or more filesystem replacement templates tried in order.
type AliasRule struct {
	Pattern      string
	Replacements []string
}

// Options carries everything the resolver needs beyond the specifier
// itself. Resolution is a pure function of (fromFile, specifier, Options)
// and the filesystem's current contents.
type Options struct {
	// Root is the analyzed tree's root directory.
	Root string

	// BaseURL, if set, takes precedence over Root for alias and
	// non-relative resolution.
	BaseURL string

	// Aliases are consulted in order; the first rule (and, within a
	// wildcard rule, the first replacement) that resolves to a real file
	// wins.
	Aliases []AliasRule

	// AllowedExtensions is the ordered list of extensions tried during
	// the file-existence probe (e.g. [".ts", ".tsx", ".js", ".jsx"]).
	AllowedExtensions []string
}
