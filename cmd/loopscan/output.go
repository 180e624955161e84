package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"loopscan/internal/analyze"
)

func printText(r *analyze.Result) {
	rel := func(p string) string {
		if out, err := filepath.Rel(r.Root, p); err == nil {
			return filepath.ToSlash(out)
		}
		return p
	}

	fmt.Printf("Scanned %d files, %d dependencies, %s\n",
		r.Stats.TotalFiles, r.Stats.TotalDependencies, r.Stats.Duration.Round(1e6))

	if len(r.Errors) > 0 {
		fmt.Printf("\n%d file(s) could not be parsed:\n", len(r.Errors))
		for _, fe := range r.Errors {
			fmt.Printf("  %s: %v\n", rel(fe.Path), fe.Err)
		}
	}

	if len(r.Cycles) == 0 {
		fmt.Println("\nNo circular dependencies found.")
		return
	}

	fmt.Printf("\nFound %d circular dependenc%s:\n", len(r.Cycles), plural(len(r.Cycles)))
	for i, c := range r.Cycles {
		chain := make([]string, len(c.Chain))
		for j, p := range c.Chain {
			chain[j] = rel(p)
		}
		fmt.Printf("\n%d. %s\n", i+1, strings.Join(chain, " -> "))
		for _, s := range c.Suggestions {
			fmt.Printf("   - [%s] %s\n", s.Type, s.Description)
		}
	}

	if len(r.Stats.TopDependencies) > 0 {
		fmt.Println("\nFiles with the most dependencies:")
		for _, e := range r.Stats.TopDependencies {
			fmt.Printf("  %s (%d)\n", rel(e.File), e.Count)
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
