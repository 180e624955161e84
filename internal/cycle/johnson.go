package cycle

import "sort"

// EnumerateElementaryCycles implements Johnson's algorithm to find up to
// maxCycles simple elementary cycles in g, each normalized to its
// minimum-rotation canonical form with duplicates dropped. It is not used
// by the default analysis (Find uses Tarjan plus a self-loop scan instead);
// it is offered as a more exhaustive, opt-in alternative for callers who
// want every elementary cycle rather than one representative per SCC.
//
// A maxCycles <= 0 means unbounded.
func EnumerateElementaryCycles(g Graph, maxCycles int) []Cycle {
	nodes := append([]string(nil), g.Nodes()...)
	sort.Strings(nodes)

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	adj := make([][]int, len(nodes))
	for i, n := range nodes {
		for _, to := range g.Outgoing(n) {
			if j, ok := index[to]; ok {
				adj[i] = append(adj[i], j)
			}
		}
		sort.Ints(adj[i])
	}

	j := &johnsonState{
		nodes:     nodes,
		adj:       adj,
		blocked:   make([]bool, len(nodes)),
		blockMap:  make([]map[int]bool, len(nodes)),
		seen:      map[string]bool{},
		maxCycles: maxCycles,
	}
	for i := range j.blockMap {
		j.blockMap[i] = map[int]bool{}
	}

	for s := 0; s < len(nodes); s++ {
		if j.limitReached() {
			break
		}
		for i := range j.blocked {
			j.blocked[i] = false
			j.blockMap[i] = map[int]bool{}
		}
		j.stack = j.stack[:0]
		j.circuit(s, s, s)
	}

	cycles := make([]Cycle, 0, len(j.results))
	for _, chain := range j.results {
		cycles = append(cycles, Cycle{Chain: chain, Length: len(chain) - 1})
	}
	sort.Slice(cycles, func(a, b int) bool {
		return chainKey(cycles[a].Chain) < chainKey(cycles[b].Chain)
	})
	return cycles
}

type johnsonState struct {
	nodes     []string
	adj       [][]int
	blocked   []bool
	blockMap  []map[int]bool
	stack     []int
	seen      map[string]bool
	results   [][]string
	maxCycles int
}

func (j *johnsonState) limitReached() bool {
	return j.maxCycles > 0 && len(j.results) >= j.maxCycles
}

func (j *johnsonState) unblock(u int) {
	j.blocked[u] = false
	for w := range j.blockMap[u] {
		delete(j.blockMap[u], w)
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}

// circuit is the recursive Johnson's-algorithm search for elementary
// cycles through v, restricted to the subgraph induced by nodes whose
// index is >= subgraphStart, closing back at s.
func (j *johnsonState) circuit(v, s, subgraphStart int) bool {
	if j.limitReached() {
		return false
	}

	found := false
	j.stack = append(j.stack, v)
	j.blocked[v] = true

	for _, w := range j.adj[v] {
		if w < subgraphStart {
			continue
		}
		if j.limitReached() {
			break
		}
		if w == s {
			chain := make([]string, len(j.stack)+1)
			for i, idx := range j.stack {
				chain[i] = j.nodes[idx]
			}
			chain[len(chain)-1] = j.nodes[s]

			canon := canonicalRotation(chain[:len(chain)-1])
			key := chainKey(append(append([]string(nil), canon...), canon[0]))
			if !j.seen[key] {
				j.seen[key] = true
				j.results = append(j.results, chain)
			}
			found = true
		} else if !j.blocked[w] {
			if j.circuit(w, s, subgraphStart) {
				found = true
			}
		}
	}

	if found {
		j.unblock(v)
	} else {
		for _, w := range j.adj[v] {
			if w < subgraphStart {
				continue
			}
			j.blockMap[w][v] = true
		}
	}

	j.stack = j.stack[:len(j.stack)-1]
	return found
}

// canonicalRotation rotates an open elementary-cycle node list so it starts
// at its lexicographically smallest element, giving every rotation of the
// same cycle an identical representation for deduplication.
func canonicalRotation(nodes []string) []string {
	if len(nodes) == 0 {
		return nodes
	}
	minIdx := 0
	for i, n := range nodes {
		if n < nodes[minIdx] {
			minIdx = i
		}
	}
	out := make([]string, len(nodes))
	for i := range nodes {
		out[i] = nodes[(minIdx+i)%len(nodes)]
	}
	return out
}
