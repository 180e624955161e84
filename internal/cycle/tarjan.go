package cycle

import "sort"

// frame is one entry of the explicit call stack that replaces the
// recursive `dfs(v)` call GoSim's cycles.go uses. Iterating rather than
// recursing keeps stack depth bounded by a heap-allocated slice instead of
// the goroutine stack, which matters on deep import chains (see
// BenchmarkAnalyzeChain101 in internal/analyze).
type frame struct {
	node         string
	neighbors    []string
	neighborIdx  int
}

// stronglyConnectedComponents runs Tarjan's algorithm over g and returns
// every SCC of size >= 2, each as a slice of node paths in the order they
// were popped off Tarjan's stack (reverse discovery order).
// Nodes are visited in sorted order so that, given deterministic adjacency
// order, the result is reproducible across runs.
func stronglyConnectedComponents(g Graph) [][]string {
	index := 0
	indices := map[string]int{}
	lowlink := map[string]int{}
	onStack := map[string]bool{}
	var stack []string
	var sccs [][]string

	nodes := append([]string(nil), g.Nodes()...)
	sort.Strings(nodes)

	for _, root := range nodes {
		if _, seen := indices[root]; seen {
			continue
		}

		var callStack []*frame
		push := func(v string) {
			indices[v] = index
			lowlink[v] = index
			index++
			stack = append(stack, v)
			onStack[v] = true

			neighbors := append([]string(nil), g.Outgoing(v)...)
			sort.Strings(neighbors)
			callStack = append(callStack, &frame{node: v, neighbors: neighbors})
		}

		push(root)

		for len(callStack) > 0 {
			top := callStack[len(callStack)-1]

			if top.neighborIdx < len(top.neighbors) {
				w := top.neighbors[top.neighborIdx]
				top.neighborIdx++

				if _, seen := indices[w]; !seen {
					push(w)
					continue
				}
				if onStack[w] && indices[w] < lowlink[top.node] {
					lowlink[top.node] = indices[w]
				}
				continue
			}

			// all neighbors of top.node explored; pop and propagate
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := callStack[len(callStack)-1]
				if lowlink[top.node] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[top.node]
				}
			}

			if lowlink[top.node] == indices[top.node] {
				var comp []string
				for {
					n := len(stack) - 1
					w := stack[n]
					stack = stack[:n]
					onStack[w] = false
					comp = append(comp, w)
					if w == top.node {
						break
					}
				}
				if len(comp) > 1 {
					sccs = append(sccs, comp)
				}
			}
		}
	}

	return sccs
}
