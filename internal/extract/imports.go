package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// walkImports performs a depth-first traversal of the AST, recognizing the
// five import-like constructs spec §4.2 names: static import statements,
// dynamic import() expressions, CommonJS require() calls, re-export-from
// statements, and (by falling through) everything else, which is simply
// recursed into.
func walkImports(root *sitter.Node, content []byte) []ImportRecord {
	var records []ImportRecord

	iter := sitter.NewIterator(root, sitter.DFSMode)
	for {
		n, err := iter.Next()
		if err != nil || n == nil {
			break
		}

		switch n.Type() {
		case "import_statement":
			if rec, ok := parseStaticImport(n, content); ok {
				records = append(records, rec)
			}
		case "export_statement":
			if rec, ok := parseReexport(n, content); ok {
				records = append(records, rec)
			}
		case "call_expression":
			if rec, ok := parseDynamicImport(n, content); ok {
				records = append(records, rec)
				break
			}
			if rec, ok := parseRequireCall(n, content); ok {
				records = append(records, rec)
			}
		}
	}

	return records
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
		return s[1 : len(s)-1]
	}
	return s
}

// stringSource returns the first string-literal child's unquoted text, or
// "" if none is found. Template literals with interpolation are not plain
// "string" nodes in the grammar, so they are naturally skipped.
func stringSource(n *sitter.Node, content []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "string" {
			return unquote(child.Content(content))
		}
	}
	return ""
}

// parseStaticImport handles `import ... from "..."` and the side-effect
// form `import "...".`
func parseStaticImport(n *sitter.Node, content []byte) (ImportRecord, bool) {
	source := stringSource(n, content)
	if source == "" {
		return ImportRecord{}, false
	}

	var specifiers []string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "import_clause":
			specifiers = append(specifiers, importClauseSpecifiers(child, content)...)
		}
	}

	return ImportRecord{
		Source:     source,
		Kind:       KindStaticESM,
		Specifiers: specifiers,
		Line:       line(n),
	}, true
}

func importClauseSpecifiers(clause *sitter.Node, content []byte) []string {
	var specifiers []string

	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		switch child.Type() {
		case "identifier":
			// bare default-import identifier
			specifiers = append(specifiers, child.Content(content))
		case "namespace_import":
			if name := namespaceImportName(child, content); name != "" {
				specifiers = append(specifiers, "* as "+name)
			}
		case "named_imports":
			specifiers = append(specifiers, namedImportSpecifiers(child, content)...)
		}
	}

	return specifiers
}

func namespaceImportName(n *sitter.Node, content []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "identifier" {
			return child.Content(content)
		}
	}
	return ""
}

// namedImportSpecifiers extracts each `{ a, b as c }` element. Per spec: for
// a renamed element prefer the alias; otherwise push the bare name.
func namedImportSpecifiers(n *sitter.Node, content []byte) []string {
	var specifiers []string

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() != "import_specifier" {
			continue
		}

		var idents []string
		for j := 0; j < int(child.ChildCount()); j++ {
			grand := child.Child(j)
			if grand.Type() == "identifier" {
				idents = append(idents, grand.Content(content))
			}
		}

		switch len(idents) {
		case 0:
			continue
		case 1:
			specifiers = append(specifiers, idents[0])
		default:
			// name, alias -> prefer alias
			specifiers = append(specifiers, idents[len(idents)-1])
		}
	}

	return specifiers
}

// parseDynamicImport handles `import("...")`.
func parseDynamicImport(n *sitter.Node, content []byte) (ImportRecord, bool) {
	if n.ChildCount() == 0 {
		return ImportRecord{}, false
	}
	callee := n.Child(0)
	if callee == nil || callee.Type() != "import" {
		return ImportRecord{}, false
	}

	source := firstStringArgument(n, content)
	if source == "" {
		return ImportRecord{}, false
	}

	return ImportRecord{
		Source: source,
		Kind:   KindDynamicESM,
		Line:   line(n),
	}, true
}

// parseRequireCall handles `require("...")`, including when it appears as
// the right-hand side of a variable declarator:
//
//	const foo = require("./foo")
//	const { a, b: c } = require("./foo")
func parseRequireCall(n *sitter.Node, content []byte) (ImportRecord, bool) {
	if n.ChildCount() == 0 {
		return ImportRecord{}, false
	}
	callee := n.Child(0)
	if callee == nil || callee.Type() != "identifier" || callee.Content(content) != "require" {
		return ImportRecord{}, false
	}

	source := firstStringArgument(n, content)
	if source == "" {
		return ImportRecord{}, false
	}

	return ImportRecord{
		Source:     source,
		Kind:       KindCommonJSRequire,
		Specifiers: requireSpecifiers(n, content),
		Line:       line(n),
	}, true
}

func firstStringArgument(call *sitter.Node, content []byte) string {
	if call.ChildCount() < 2 {
		return ""
	}
	args := call.Child(1)
	if args == nil {
		return ""
	}
	for i := 0; i < int(args.ChildCount()); i++ {
		child := args.Child(i)
		if child.Type() == "string" {
			return unquote(child.Content(content))
		}
	}
	return ""
}

// requireSpecifiers inspects the enclosing variable_declarator (if any) to
// recover the bindings a require() call introduces.
func requireSpecifiers(call *sitter.Node, content []byte) []string {
	parent := call.Parent()
	if parent == nil || parent.Type() != "variable_declarator" {
		return nil
	}

	pattern := parent.Child(0)
	if pattern == nil {
		return nil
	}

	switch pattern.Type() {
	case "identifier":
		return []string{pattern.Content(content)}
	case "object_pattern":
		return objectPatternSpecifiers(pattern, content)
	default:
		return nil
	}
}

func objectPatternSpecifiers(n *sitter.Node, content []byte) []string {
	var specifiers []string

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "shorthand_property_identifier_pattern", "identifier":
			specifiers = append(specifiers, child.Content(content))
		case "pair_pattern":
			// `b: c` -> key is child(0), value is child(2) (":" is child(1))
			if child.ChildCount() >= 3 {
				value := child.Child(2)
				specifiers = append(specifiers, value.Content(content))
			}
		}
	}

	return specifiers
}

// parseReexport handles `export { a, b as c } from "..."` and
// `export * from "..."`.
func parseReexport(n *sitter.Node, content []byte) (ImportRecord, bool) {
	source := stringSource(n, content)
	if source == "" {
		return ImportRecord{}, false
	}

	var specifiers []string
	hasWildcard := false

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "export_clause":
			specifiers = append(specifiers, exportClauseSpecifiers(child, content)...)
		case "*":
			hasWildcard = true
		}
	}

	if hasWildcard {
		specifiers = append(specifiers, "*")
	}

	return ImportRecord{
		Source:     source,
		Kind:       KindReexport,
		Specifiers: specifiers,
		Line:       line(n),
	}, true
}

func exportClauseSpecifiers(n *sitter.Node, content []byte) []string {
	var specifiers []string

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() != "export_specifier" {
			continue
		}

		var name string
		for j := 0; j < int(child.ChildCount()); j++ {
			grand := child.Child(j)
			if grand.Type() == "identifier" || grand.Type() == "string" {
				name = strings.TrimSpace(unquote(grand.Content(content)))
			}
		}
		if name != "" {
			specifiers = append(specifiers, name)
		}
	}

	return specifiers
}
