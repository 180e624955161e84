package analyze

import (
	"path/filepath"

	"loopscan/internal/cycle"
	"loopscan/internal/hash"
)

type jsonCountEntry struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

type jsonStats struct {
	TotalFiles           int              `json:"totalFiles"`
	TotalDependencies    int              `json:"totalDependencies"`
	CircularDependencies int              `json:"circularDependencies"`
	TopDependencies      []jsonCountEntry `json:"topDependencies"`
	TopDependents        []jsonCountEntry `json:"topDependents"`
	Duration             int64            `json:"duration"`
}

type jsonTargetEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type jsonSuggestion struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	TargetEdge  *jsonTargetEdge `json:"targetEdge,omitempty"`
}

type jsonCycle struct {
	Chain       []string         `json:"chain"`
	Length      int              `json:"length"`
	Suggestions []jsonSuggestion `json:"suggestions"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type jsonGraph struct {
	Nodes []string   `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonFileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

type jsonResult struct {
	Stats  jsonStats       `json:"stats"`
	Cycles []jsonCycle     `json:"cycles"`
	Graph  jsonGraph       `json:"graph"`
	Errors []jsonFileError `json:"errors"`
}

// ToJSON renders Result into the document §6 describes, with every path
// relativized to the analyzed root.
func (r *Result) ToJSON() ([]byte, error) {
	rel := func(p string) string {
		if out, err := filepath.Rel(r.Root, p); err == nil {
			return filepath.ToSlash(out)
		}
		return p
	}

	doc := jsonResult{
		Stats: jsonStats{
			TotalFiles:           r.Stats.TotalFiles,
			TotalDependencies:    r.Stats.TotalDependencies,
			CircularDependencies: r.Stats.CircularDependencies,
			Duration:             r.Stats.Duration.Milliseconds(),
			TopDependencies:      []jsonCountEntry{},
			TopDependents:        []jsonCountEntry{},
		},
		Cycles: []jsonCycle{},
		Graph:  jsonGraph{Nodes: []string{}, Edges: []jsonEdge{}},
		Errors: []jsonFileError{},
	}

	for _, e := range r.Stats.TopDependencies {
		doc.Stats.TopDependencies = append(doc.Stats.TopDependencies, jsonCountEntry{File: rel(e.File), Count: e.Count})
	}
	for _, e := range r.Stats.TopDependents {
		doc.Stats.TopDependents = append(doc.Stats.TopDependents, jsonCountEntry{File: rel(e.File), Count: e.Count})
	}

	for _, c := range r.Cycles {
		doc.Cycles = append(doc.Cycles, toJSONCycle(c, rel))
	}

	for _, n := range r.Graph.Nodes() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, rel(n))
	}
	for _, e := range r.Graph.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, jsonEdge{From: rel(e.From), To: rel(e.To)})
	}

	for _, fe := range r.Errors {
		doc.Errors = append(doc.Errors, jsonFileError{File: rel(fe.Path), Error: fe.Err.Error()})
	}

	return hash.CanonicalJSON(doc)
}

func toJSONCycle(c cycle.Cycle, rel func(string) string) jsonCycle {
	jc := jsonCycle{Length: c.Length}
	for _, p := range c.Chain {
		jc.Chain = append(jc.Chain, rel(p))
	}
	for _, s := range c.Suggestions {
		js := jsonSuggestion{Type: string(s.Type), Description: s.Description}
		if s.TargetEdge != nil {
			js.TargetEdge = &jsonTargetEdge{From: rel(s.TargetEdge.From), To: rel(s.TargetEdge.To)}
		}
		jc.Suggestions = append(jc.Suggestions, js)
	}
	return jc
}
