package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"loopscan/internal/cycle"
	"loopscan/internal/depgraph"
	"loopscan/internal/discover"
	"loopscan/internal/extract"
	"loopscan/internal/filecache"
	"loopscan/internal/hash"
	"loopscan/internal/resolve"
)

type fileResult struct {
	path    string
	records []extract.ImportRecord
	err     error
}

// Directory runs the full pipeline over root and returns the analysis
// result. Discovery produces a deterministic file list; files are then
// extracted in fixed-size batches of Options.Concurrency, resolved against
// the tree, assembled into a graph, and finally searched for cycles.
func Directory(ctx context.Context, root string, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.logger()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", absRoot)
	}

	opts.report(opts.Progress, ProgressEvent{Phase: PhaseDiscovering})
	logger.Info("discovering files", "root", absRoot)

	files, err := discover.Directory(ctx, absRoot, discover.Options{
		AllowedExtensions: extensionSet(opts.AllowedExtensions),
		IgnoredDirNames:   opts.IgnoredDirNames,
		IgnorePatterns:    opts.IgnorePatterns,
		FollowSymlinks:    opts.FollowSymlinks,
	})
	if err != nil {
		return nil, err
	}

	var cache filecache.Cache
	if opts.EnableCache {
		cache = opts.Cache
		if cache == nil {
			cache = filecache.NewLRU(filecache.DefaultCapacity)
		}
	}

	records, fileErrors := extractAll(ctx, files, opts, cache)

	opts.report(opts.Progress, ProgressEvent{Phase: PhaseAnalyzing})
	logger.Info("building dependency graph")

	graph := buildGraph(files, records, absRoot, opts)
	cycles := cycle.Find(graph)

	stats := computeStats(files, graph, cycles, opts.topN(), start)

	return &Result{
		Root:   absRoot,
		Graph:  graph,
		Cycles: cycles,
		Errors: fileErrors,
		Stats:  stats,
	}, nil
}

// extractAll parses every file's imports in fixed-size batches, keeping
// the pipeline's memory bound at O(concurrency x avg file size) and
// yielding one deterministic progress event per batch boundary.
func extractAll(ctx context.Context, files []string, opts Options, cache filecache.Cache) (map[string][]extract.ImportRecord, []FileError) {
	records := make(map[string][]extract.ImportRecord, len(files))
	var fileErrors []FileError

	batchSize := opts.concurrency()
	total := len(files)

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}
		batch := files[start:end]

		results := make([]fileResult, len(batch))
		g, gCtx := errgroup.WithContext(ctx)
		for i, path := range batch {
			i, path := i, path
			g.Go(func() error {
				results[i] = extractOne(gCtx, path, cache)
				return nil
			})
		}
		g.Wait()

		for _, r := range results {
			if r.err != nil {
				fileErrors = append(fileErrors, FileError{Path: r.path, Err: r.err})
				continue
			}
			records[r.path] = r.records
		}

		opts.report(opts.Progress, ProgressEvent{Phase: PhaseParsing, Current: end, Total: total})
	}

	return records, fileErrors
}

func extractOne(ctx context.Context, path string, cache filecache.Cache) fileResult {
	content, err := readFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	digest := hash.DigestHex(content)

	if cache != nil {
		if cached, ok := cache.Get(path, digest); ok {
			return fileResult{path: path, records: cached}
		}
	}

	lang, ok := extract.LanguageForExt(lowerExt(path))
	if !ok {
		return fileResult{path: path, err: unsupportedFileType(path)}
	}

	parser := extract.NewParser()
	recs, err := parser.Extract(ctx, content, lang)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	if cache != nil {
		cache.Put(path, digest, recs)
	}

	return fileResult{path: path, records: recs}
}

// buildGraph resolves every extracted specifier against the tree and
// assembles the dependency graph. Every discovered file becomes a node
// even if it has no edges, so orphan/leaf/root queries see the whole tree.
func buildGraph(files []string, records map[string][]extract.ImportRecord, root string, opts Options) *depgraph.Graph {
	g := depgraph.New()
	for _, f := range files {
		g.AddNode(f)
	}

	resolveOpts := resolve.Options{
		Root:              root,
		BaseURL:           opts.BaseURL,
		Aliases:           opts.Aliases,
		AllowedExtensions: defaultExtensionOrder(opts.AllowedExtensions),
	}

	for from, recs := range records {
		for _, rec := range recs {
			to, ok := resolve.Resolve(from, rec.Source, resolveOpts)
			if !ok {
				continue
			}
			g.AddEdge(from, to)
		}
	}

	return g
}

func computeStats(files []string, g *depgraph.Graph, cycles []cycle.Cycle, topN int, start time.Time) Stats {
	topOut := g.TopKByOutgoing(topN)
	topIn := g.TopKByIncoming(topN)

	return Stats{
		TotalFiles:           len(files),
		TotalDependencies:    g.EdgeCount(),
		CircularDependencies: len(cycles),
		TopDependencies:      toCountEntries(topOut),
		TopDependents:        toCountEntries(topIn),
		Duration:             time.Since(start),
	}
}

func toCountEntries(entries []depgraph.CountEntry) []CountEntry {
	out := make([]CountEntry, len(entries))
	for i, e := range entries {
		out[i] = CountEntry{File: e.Path, Count: e.Count}
	}
	return out
}
