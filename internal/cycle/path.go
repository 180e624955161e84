package cycle

import "sort"

// chainThroughSCC returns a closed path through the nodes of an SCC,
// starting and ending at the same node, by running a DFS from a
// deterministically chosen start node and following only edges that stay
// inside the SCC.
func chainThroughSCC(g Graph, scc []string) []string {
	inSCC := make(map[string]bool, len(scc))
	for _, n := range scc {
		inSCC[n] = true
	}

	sorted := append([]string(nil), scc...)
	sort.Strings(sorted)
	start := sorted[0]

	visited := map[string]bool{}
	path := []string{}
	if dfsForCycle(g, start, start, inSCC, visited, &path, true) {
		return path
	}

	// Should not happen for a valid SCC; fall back to a synthetic closed
	// walk over the component in sorted order.
	return append(append([]string(nil), sorted...), sorted[0])
}

// dfsForCycle mirrors the recursive cycle-reconstruction walk: explore
// neighbors in sorted order, restricted to the SCC's node set, until the
// start node is seen again.
func dfsForCycle(g Graph, current, target string, inSCC, visited map[string]bool, path *[]string, isFirst bool) bool {
	*path = append(*path, current)
	visited[current] = true

	var neighbors []string
	for _, n := range g.Outgoing(current) {
		if inSCC[n] {
			neighbors = append(neighbors, n)
		}
	}
	sort.Strings(neighbors)

	for _, n := range neighbors {
		if !isFirst && n == target {
			*path = append(*path, n)
			return true
		}
		if !visited[n] {
			if dfsForCycle(g, n, target, inSCC, visited, path, false) {
				return true
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	return false
}
