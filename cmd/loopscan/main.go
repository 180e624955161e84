// Command loopscan finds circular import dependencies in a JavaScript or
// TypeScript source tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	outputFormat string
	ignoreGlobs  []string
	configPath   string
	baseURL      string
	followLinks  bool
	useCache     bool
	topN         int
)

var rootCmd = &cobra.Command{
	Use:   "loopscan",
	Short: "Find circular import dependencies in a JS/TS source tree",
	Long:  `loopscan walks a JavaScript/TypeScript source tree, builds its import dependency graph, and reports circular dependencies along with suggested fixes.`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a directory for circular dependencies",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format: text or json")
	analyzeCmd.Flags().StringArrayVar(&ignoreGlobs, "ignore", nil, "Glob pattern to ignore (may be repeated)")
	analyzeCmd.Flags().StringVar(&configPath, "config", "", "Path to a loopscan config file (YAML)")
	analyzeCmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL directory for bare specifier resolution")
	analyzeCmd.Flags().BoolVar(&followLinks, "follow-symlinks", false, "Follow symlinks while walking the tree")
	analyzeCmd.Flags().BoolVar(&useCache, "cache", true, "Cache parsed imports by content hash in memory for this run")
	analyzeCmd.Flags().IntVar(&topN, "top", 0, "Number of entries in the top-dependencies/dependents summary (0 = default)")

	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
