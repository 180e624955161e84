// Package extract parses a single file's source text into an AST and emits
// the list of module specifiers it references.
package extract

// Kind identifies which grammar construct produced an ImportRecord.
type Kind string

const (
	KindStaticESM       Kind = "static-esm"
	KindDynamicESM      Kind = "dynamic-esm"
	KindCommonJSRequire Kind = "commonjs-require"
	KindReexport        Kind = "reexport"
)

// Language selects which tree-sitter grammar parses a file.
type Language string

const (
	LangTyped                    Language = "typed"
	LangTypedComponentSyntax     Language = "typed-with-component-syntax"
	LangUntyped                  Language = "untyped"
	LangUntypedComponentSyntax   Language = "untyped-with-component-syntax"
)

// ImportRecord is one outbound module reference extracted from a file.
//
// Invariant: Source is never empty; records with an empty or
// non-string-literal specifier are dropped during extraction, not emitted
// with a zero value.
type ImportRecord struct {
	Source      string
	Kind        Kind
	Specifiers  []string
	Line        int
}

// LanguageForExt maps a lowercased file extension (including the leading
// dot) to the language selector the extractor should parse it with. It
// returns ok=false for extensions the extractor does not support.
func LanguageForExt(ext string) (Language, bool) {
	switch ext {
	case ".ts", ".mts", ".cts":
		return LangTyped, true
	case ".tsx":
		return LangTypedComponentSyntax, true
	case ".js", ".mjs", ".cjs":
		return LangUntyped, true
	case ".jsx":
		return LangUntypedComponentSyntax, true
	default:
		return "", false
	}
}
