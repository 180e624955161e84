package extract

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parser wraps one tree-sitter parser per supported language dialect.
// A Parser is not safe for concurrent use; callers that extract many
// files concurrently should construct one Parser per goroutine (tree-sitter
// parsers are cheap to create).
type Parser struct {
	untyped  *sitter.Parser // js/jsx share the javascript grammar
	typed    *sitter.Parser // ts
	typedTSX *sitter.Parser // tsx
}

// NewParser creates a Parser with all four grammars loaded.
func NewParser() *Parser {
	untyped := sitter.NewParser()
	untyped.SetLanguage(javascript.GetLanguage())

	typed := sitter.NewParser()
	typed.SetLanguage(typescript.GetLanguage())

	typedTSX := sitter.NewParser()
	typedTSX.SetLanguage(tsx.GetLanguage())

	return &Parser{untyped: untyped, typed: typed, typedTSX: typedTSX}
}

func (p *Parser) grammarFor(lang Language) (*sitter.Parser, error) {
	switch lang {
	case LangUntyped, LangUntypedComponentSyntax:
		return p.untyped, nil
	case LangTyped:
		return p.typed, nil
	case LangTypedComponentSyntax:
		return p.typedTSX, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %q", lang)
	}
}

// Extract parses content under the given language and returns the ordered
// list of outbound ImportRecords. Parse failures are returned as an error;
// the caller is responsible for attaching the file path and continuing with
// other files (category 2/3 of the error taxonomy).
func (p *Parser) Extract(ctx context.Context, content []byte, lang Language) ([]ImportRecord, error) {
	grammar, err := p.grammarFor(lang)
	if err != nil {
		return nil, err
	}

	tree, err := grammar.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	return walkImports(tree.RootNode(), content), nil
}
