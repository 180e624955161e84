// Package cycle finds strongly-connected components in a dependency graph,
// reconstructs a representative cycle path through each, and produces
// refactoring suggestions for breaking them.
package cycle

import "loopscan/internal/depgraph"

// Cycle is a representative traversal of one SCC, or a self-loop.
type Cycle struct {
	// Chain is a closed path: Chain[0] == Chain[len(Chain)-1].
	Chain []string

	// Length is the number of distinct nodes in the cycle (len(Chain)-1
	// for a multi-node cycle, 1 for a self-loop).
	Length int

	Suggestions []Suggestion
}

// SuggestionType enumerates the refactoring actions this package can
// propose for a cycle.
type SuggestionType string

const (
	SuggestExtractInterface   SuggestionType = "extract-interface"
	SuggestDependencyInject   SuggestionType = "dependency-injection"
	SuggestLazyImport         SuggestionType = "lazy-import"
	SuggestMergeFiles         SuggestionType = "merge-files"
	SuggestReorderImports     SuggestionType = "reorder-imports"
)

// TargetEdge names the edge a Suggestion proposes to alter.
type TargetEdge struct {
	From string
	To   string
}

// Suggestion is one piece of actionable guidance for breaking a cycle.
type Suggestion struct {
	Type        SuggestionType
	Description string
	TargetEdge  *TargetEdge
}

// Graph is the minimal read surface the cycle engine needs; depgraph.Graph
// satisfies it directly.
type Graph interface {
	Nodes() []string
	Outgoing(path string) []string
}

var _ Graph = (*depgraph.Graph)(nil)
