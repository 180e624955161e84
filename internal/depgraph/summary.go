package depgraph

import "sort"

// CountEntry pairs a node path with a degree count, used by the top-k
// dependency/dependent summaries.
type CountEntry struct {
	Path  string
	Count int
}

// TopKByOutgoing returns the k nodes with the highest outgoing degree,
// breaking ties by path for determinism.
func (g *Graph) TopKByOutgoing(k int) []CountEntry {
	return g.topK(k, func(n *Node) int { return len(n.outgoing) })
}

// TopKByIncoming returns the k nodes with the highest incoming degree,
// breaking ties by path for determinism.
func (g *Graph) TopKByIncoming(k int) []CountEntry {
	return g.topK(k, func(n *Node) int { return len(n.incoming) })
}

func (g *Graph) topK(k int, degree func(*Node) int) []CountEntry {
	entries := make([]CountEntry, 0, len(g.nodes))
	for _, path := range g.Nodes() {
		entries = append(entries, CountEntry{Path: path, Count: degree(g.nodes[path])})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Path < entries[j].Path
	})

	if k >= 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}

// Orphans returns nodes with neither outgoing nor incoming edges.
func (g *Graph) Orphans() []string {
	var out []string
	for _, path := range g.Nodes() {
		node := g.nodes[path]
		if len(node.outgoing) == 0 && len(node.incoming) == 0 {
			out = append(out, path)
		}
	}
	return out
}

// Leaves returns nodes that depend on something but nothing depends on
// them.
func (g *Graph) Leaves() []string {
	var out []string
	for _, path := range g.Nodes() {
		node := g.nodes[path]
		if len(node.outgoing) > 0 && len(node.incoming) == 0 {
			out = append(out, path)
		}
	}
	return out
}

// Roots returns nodes that depend on nothing but are depended upon.
func (g *Graph) Roots() []string {
	var out []string
	for _, path := range g.Nodes() {
		node := g.nodes[path]
		if len(node.outgoing) == 0 && len(node.incoming) > 0 {
			out = append(out, path)
		}
	}
	return out
}
