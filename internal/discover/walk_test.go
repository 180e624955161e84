package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDirectory_CollectsAllowedExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.ts"))
	touch(t, filepath.Join(root, "b.txt"))
	touch(t, filepath.Join(root, "src", "c.tsx"))

	files, err := Directory(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
}

func TestDirectory_SkipsDefaultIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "node_modules", "pkg", "index.js"))
	touch(t, filepath.Join(root, "src", "index.js"))

	files, err := Directory(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "index.js" {
		t.Fatalf("expected only src/index.js, got %v", files)
	}
}

func TestDirectory_IgnorePatternCrossesDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "src", "generated", "schema.ts"))
	touch(t, filepath.Join(root, "src", "main.ts"))

	files, err := Directory(context.Background(), root, Options{
		IgnorePatterns: []string{"*generated*"},
	})
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "main.ts" {
		t.Fatalf("expected only main.ts, got %v", files)
	}
}

func TestDirectory_DeterministicOrdering(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "z.ts"))
	touch(t, filepath.Join(root, "a.ts"))
	touch(t, filepath.Join(root, "m.ts"))

	first, err := Directory(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	second, err := Directory(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatal("expected stable result count across runs")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical ordering, got %v vs %v", first, second)
		}
	}
	if first[0] != filepath.Join(root, "a.ts") {
		t.Errorf("expected sorted order to start with a.ts, got %v", first)
	}
}

func TestDirectory_UnreadableDirectoryIsSkippedNotError(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "ok.ts"))
	locked := filepath.Join(root, "locked")
	if err := os.MkdirAll(locked, 0o000); err != nil {
		t.Fatalf("mkdir locked: %v", err)
	}
	defer os.Chmod(locked, 0o755)

	_, err := Directory(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("expected no error for an unreadable subdirectory, got %v", err)
	}
}
