package cycle

import "sort"

// Find runs the default cycle analysis: Tarjan SCC discovery for
// multi-node cycles plus an independent self-loop scan, each SCC
// flattened to one representative closed chain, with suggestions attached.
// Results are sorted by chain for determinism.
func Find(g Graph) []Cycle {
	var cycles []Cycle

	for _, scc := range stronglyConnectedComponents(g) {
		chain := chainThroughSCC(g, scc)
		c := Cycle{
			Chain:  chain,
			Length: len(chain) - 1,
		}
		c.Suggestions = suggestionsFor(g, c)
		cycles = append(cycles, c)
	}

	for _, p := range selfLoops(g) {
		c := Cycle{
			Chain:  []string{p, p},
			Length: 1,
		}
		c.Suggestions = suggestionsFor(g, c)
		cycles = append(cycles, c)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return chainKey(cycles[i].Chain) < chainKey(cycles[j].Chain)
	})

	return cycles
}

func chainKey(chain []string) string {
	key := ""
	for _, p := range chain {
		key += p + "\x00"
	}
	return key
}
