package cycle

import "sort"

// selfLoops scans every node's outgoing set directly for an edge back to
// itself. Tarjan does not surface these as multi-node SCCs, so they are
// found by a separate pass, independent of stronglyConnectedComponents.
func selfLoops(g Graph) []string {
	var out []string
	for _, n := range g.Nodes() {
		for _, to := range g.Outgoing(n) {
			if to == n {
				out = append(out, n)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
