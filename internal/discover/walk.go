package discover

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"loopscan/internal/extract"
)

// Directory recursively walks root and returns a deterministic list of
// absolute file paths eligible for extraction, per §4.1's ordered rules.
// Unreadable directories are skipped silently, not reported as an error.
func Directory(ctx context.Context, root string, opts Options) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	matcher := NewMatcher(opts.IgnorePatterns)
	ignoredDirs := opts.ignoredDirNames()

	files, err := walkDir(ctx, absRoot, opts, ignoredDirs, matcher)
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func walkDir(ctx context.Context, dir string, opts Options, ignoredDirs map[string]bool, matcher *Matcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// An unreadable directory is not an error to be surfaced.
		return nil, nil
	}

	var files []string
	var subdirs []string

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		info, err := entryInfo(entry, full, opts.FollowSymlinks)
		if err != nil {
			continue
		}

		if info.IsDir() {
			if ignoredDirs[name] {
				continue
			}
			if matcher.Match(full) {
				continue
			}
			subdirs = append(subdirs, full)
			continue
		}

		if !admitFile(full, opts) {
			continue
		}
		if matcher.Match(full) {
			continue
		}
		files = append(files, full)
	}

	if len(subdirs) > 0 {
		results := make([][]string, len(subdirs))
		g, gCtx := errgroup.WithContext(ctx)
		for i, sub := range subdirs {
			i, sub := i, sub
			g.Go(func() error {
				sub, err := walkDir(gCtx, sub, opts, ignoredDirs, matcher)
				if err != nil {
					return err
				}
				results[i] = sub
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for _, r := range results {
			files = append(files, r...)
		}
	}

	return files, nil
}

// entryInfo resolves a directory entry to its os.FileInfo, following a
// symlink only when FollowSymlinks is enabled.
func entryInfo(entry os.DirEntry, full string, followSymlinks bool) (os.FileInfo, error) {
	info, err := entry.Info()
	if err != nil {
		return nil, err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return info, nil
	}
	if !followSymlinks {
		return nil, errNotFollowed
	}
	return os.Stat(full)
}

var errNotFollowed = &symlinkError{}

type symlinkError struct{}

func (*symlinkError) Error() string { return "symlink not followed" }

// admitFile applies §4.1 rule 5's conjunction: an extension must be both in
// the allowed set (when the caller configured one) and recognized by the
// extractor's own language table. A configured-but-unparseable extension is
// excluded here, not surfaced later as an extraction failure.
func admitFile(path string, opts Options) bool {
	lowerExt := strings.ToLower(filepath.Ext(path))

	if _, ok := extract.LanguageForExt(lowerExt); !ok {
		return false
	}
	if opts.AllowedExtensions != nil {
		return opts.AllowedExtensions[lowerExt]
	}
	return true
}
