// Package depgraph is the in-memory, read-after-build dependency graph: a
// bidirectional adjacency structure keyed by absolute file path. The graph
// is built single-threaded from batch results once extraction and
// resolution complete, so it carries no internal synchronization.
package depgraph

import "sort"

// Node is one file's adjacency record. Outgoing and Incoming are kept
// insertion-ordered and unique; callers receive copies from the query
// methods so they cannot corrupt the graph's invariant.
type Node struct {
	Path     string
	outgoing []string
	incoming []string
}

// Edge is a directed dependency: From imports To.
type Edge struct {
	From string
	To   string
}

// Graph maintains the invariant that for every edge u -> v, v is in
// u.outgoing iff u is in v.incoming.
type Graph struct {
	nodes map[string]*Node
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode registers path if absent. Idempotent.
func (g *Graph) AddNode(path string) {
	if _, ok := g.nodes[path]; ok {
		return
	}
	g.nodes[path] = &Node{Path: path}
}

// AddEdge records that from depends on to, creating either endpoint that is
// missing. Idempotent: re-adding an existing edge is a no-op.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)

	fromNode := g.nodes[from]
	toNode := g.nodes[to]

	if !contains(fromNode.outgoing, to) {
		fromNode.outgoing = append(fromNode.outgoing, to)
	}
	if !contains(toNode.incoming, from) {
		toNode.incoming = append(toNode.incoming, from)
	}
}

// RemoveNode deletes path and scrubs it from every other node's adjacency
// lists.
func (g *Graph) RemoveNode(path string) {
	node, ok := g.nodes[path]
	if !ok {
		return
	}
	for _, to := range node.outgoing {
		if toNode, ok := g.nodes[to]; ok {
			toNode.incoming = remove(toNode.incoming, path)
		}
	}
	for _, from := range node.incoming {
		if fromNode, ok := g.nodes[from]; ok {
			fromNode.outgoing = remove(fromNode.outgoing, path)
		}
	}
	delete(g.nodes, path)
}

// RemoveEdge deletes the from->to edge, leaving both endpoints in place.
func (g *Graph) RemoveEdge(from, to string) {
	if fromNode, ok := g.nodes[from]; ok {
		fromNode.outgoing = remove(fromNode.outgoing, to)
	}
	if toNode, ok := g.nodes[to]; ok {
		toNode.incoming = remove(toNode.incoming, from)
	}
}

// HasNode reports whether path is a known node.
func (g *Graph) HasNode(path string) bool {
	_, ok := g.nodes[path]
	return ok
}

// HasEdge reports whether a from->to edge exists.
func (g *Graph) HasEdge(from, to string) bool {
	node, ok := g.nodes[from]
	if !ok {
		return false
	}
	return contains(node.outgoing, to)
}

// Outgoing returns a copy of path's outgoing adjacency, in insertion order.
func (g *Graph) Outgoing(path string) []string {
	node, ok := g.nodes[path]
	if !ok {
		return nil
	}
	return append([]string(nil), node.outgoing...)
}

// Incoming returns a copy of path's incoming adjacency, in insertion order.
func (g *Graph) Incoming(path string) []string {
	node, ok := g.nodes[path]
	if !ok {
		return nil
	}
	return append([]string(nil), node.incoming...)
}

// Nodes returns every node path, sorted for determinism.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for p := range g.nodes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Edges returns every edge in the graph, sorted by From for determinism;
// edges sharing a From keep that node's outgoing insertion order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, path := range g.Nodes() {
		for _, to := range g.nodes[path].outgoing {
			out = append(out, Edge{From: path, To: to})
		}
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, node := range g.nodes {
		n += len(node.outgoing)
	}
	return n
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func remove(s []string, v string) []string {
	out := s[:0:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
