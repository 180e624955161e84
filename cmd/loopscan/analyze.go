package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loopscan/internal/analyze"
	"loopscan/internal/config"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := args[0]

	switch outputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown --output value %q: want text or json", outputFormat)
	}

	opts := analyze.Options{
		IgnorePatterns: ignoreGlobs,
		BaseURL:        baseURL,
		FollowSymlinks: followLinks,
		EnableCache:    useCache,
		TopN:           topN,
	}

	if configPath != "" {
		file, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts.Aliases = file.ResolveAliases()
		opts.IgnoredDirNames = file.IgnoreDirSet()
		opts.IgnorePatterns = append(opts.IgnorePatterns, file.IgnorePatterns...)
		opts.AllowedExtensions = file.AllowedExtensions
		if opts.BaseURL == "" {
			opts.BaseURL = file.BaseURL
		}
	}

	if outputFormat == "text" {
		opts.Progress = func(ev analyze.ProgressEvent) {
			switch ev.Phase {
			case analyze.PhaseDiscovering:
				fmt.Print("Discovering files...")
			case analyze.PhaseParsing:
				fmt.Printf("\rParsing files... %d/%d", ev.Current, ev.Total)
				fmt.Print("\033[K")
			case analyze.PhaseAnalyzing:
				fmt.Print("\rBuilding dependency graph...")
				fmt.Print("\033[K")
			}
		}
	}

	result, err := analyze.Directory(context.Background(), root, opts)
	if outputFormat == "text" && err == nil {
		fmt.Println()
	}
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", root, err)
	}

	if outputFormat == "json" {
		data, err := result.ToJSON()
		if err != nil {
			return fmt.Errorf("rendering JSON: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printText(result)
	}

	if len(result.Cycles) > 0 {
		os.Exit(1)
	}
	return nil
}
