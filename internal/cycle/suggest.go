package cycle

import "strings"

var typeLikeSubstrings = []string{"types", ".d.ts", "interfaces", "models"}

type scoredEdge struct {
	edge       TargetEdge
	likelyType bool
	strength   int
	order      int
}

// weakestEdge applies the heuristic in §4.5: sort candidate edges by
// (likely_type_import desc, strength asc) and return the minimum, i.e. the
// edge least likely to be load-bearing and most likely to be a type-only
// reference that can be broken without touching runtime behavior.
func weakestEdge(g Graph, chain []string) TargetEdge {
	var candidates []scoredEdge
	for i := 0; i < len(chain)-1; i++ {
		from, to := chain[i], chain[i+1]
		candidates = append(candidates, scoredEdge{
			edge:       TargetEdge{From: from, To: to},
			likelyType: looksTypeOnly(to),
			strength:   strength(g, from),
			order:      i,
		})
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best.edge
}

func better(a, b scoredEdge) bool {
	if a.likelyType != b.likelyType {
		return a.likelyType // true sorts first (desc)
	}
	if a.strength != b.strength {
		return a.strength < b.strength // asc
	}
	return a.order < b.order
}

func strength(g Graph, path string) int {
	if len(g.Outgoing(path)) > 0 {
		return 1
	}
	return 0
}

func looksTypeOnly(path string) bool {
	for _, s := range typeLikeSubstrings {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// suggestionsFor produces the suggestion list for one cycle, per the rules
// table in §4.5.
func suggestionsFor(g Graph, c Cycle) []Suggestion {
	if c.Length == 1 {
		p := c.Chain[0]
		return []Suggestion{{
			Type:        SuggestReorderImports,
			Description: "file imports itself",
			TargetEdge:  &TargetEdge{From: p, To: p},
		}}
	}

	var out []Suggestion

	if c.Length == 2 {
		out = append(out,
			Suggestion{Type: SuggestExtractInterface, Description: "extract a shared interface to break the mutual dependency"},
			Suggestion{Type: SuggestMergeFiles, Description: "consider merging these two files; they depend on each other directly"},
		)
	} else {
		weak := weakestEdge(g, c.Chain)
		out = append(out,
			Suggestion{Type: SuggestExtractInterface, Description: "extract an interface for the weakest edge in this cycle", TargetEdge: &weak},
			Suggestion{Type: SuggestDependencyInject, Description: "inject this dependency rather than importing it directly"},
		)
	}

	out = append(out, Suggestion{Type: SuggestLazyImport, Description: "defer one of these imports to break the load-time cycle"})

	if c.Length >= 4 {
		out = append(out, Suggestion{Type: SuggestReorderImports, Description: "this cycle spans 4+ files; consider an architecture review"})
	}

	return out
}
