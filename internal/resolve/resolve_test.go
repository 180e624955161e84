package resolve

import (
	"os"
	"path/filepath"
	"testing"
)

var defaultExts = []string{".ts", ".tsx", ".js", ".jsx"}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("// stub\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolve_Relative(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "util.ts"))
	from := filepath.Join(root, "src", "main.ts")

	got, ok := Resolve(from, "./util", Options{Root: root, AllowedExtensions: defaultExts})
	if !ok {
		t.Fatal("expected resolution")
	}
	want := filepath.Join(root, "src", "util.ts")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolve_RelativeExplicitExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "x.ts"))
	from := filepath.Join(root, "src", "main.ts")

	got, ok := Resolve(from, "./x.ts", Options{Root: root, AllowedExtensions: defaultExts})
	if !ok {
		t.Fatal("expected resolution")
	}
	if got != filepath.Join(root, "src", "x.ts") {
		t.Errorf("unexpected path: %q", got)
	}
}

func TestResolve_RelativeIndexFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "widgets", "index.ts"))
	from := filepath.Join(root, "src", "main.ts")

	got, ok := Resolve(from, "./widgets", Options{Root: root, AllowedExtensions: defaultExts})
	if !ok {
		t.Fatal("expected resolution")
	}
	if got != filepath.Join(root, "src", "widgets", "index.ts") {
		t.Errorf("unexpected path: %q", got)
	}
}

func TestResolve_ScopedPackageWithoutAlias_IsExternal(t *testing.T) {
	root := t.TempDir()
	from := filepath.Join(root, "src", "main.ts")

	_, ok := Resolve(from, "@scope/pkg/sub", Options{Root: root, AllowedExtensions: defaultExts})
	if ok {
		t.Fatal("expected no resolution for a scoped specifier with no matching alias")
	}
}

func TestResolve_BareWordWithoutAliasOrBaseURL_IsExternal(t *testing.T) {
	root := t.TempDir()
	from := filepath.Join(root, "src", "main.ts")

	_, ok := Resolve(from, "lodash", Options{Root: root, AllowedExtensions: defaultExts})
	if ok {
		t.Fatal("expected lodash-like bare specifier to stay external")
	}
}

func TestResolve_TSConfigStyleAlias(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "components", "Button.tsx"))
	from := filepath.Join(root, "src", "pages", "Home.tsx")

	opts := Options{
		Root:    root,
		BaseURL: root,
		Aliases: []AliasRule{
			{Pattern: "@/*", Replacements: []string{"src/*"}},
		},
		AllowedExtensions: defaultExts,
	}

	got, ok := Resolve(from, "@/components/Button", opts)
	if !ok {
		t.Fatal("expected alias resolution")
	}
	want := filepath.Join(root, "src", "components", "Button.tsx")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolve_ExactAlias(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vendor", "shim.ts"))
	from := filepath.Join(root, "src", "main.ts")

	opts := Options{
		Root:    root,
		BaseURL: root,
		Aliases: []AliasRule{
			{Pattern: "legacy-shim", Replacements: []string{"vendor/shim"}},
		},
		AllowedExtensions: defaultExts,
	}

	got, ok := Resolve(from, "legacy-shim", opts)
	if !ok {
		t.Fatal("expected exact alias resolution")
	}
	if got != filepath.Join(root, "vendor", "shim.ts") {
		t.Errorf("unexpected path: %q", got)
	}
}

func TestResolve_CompiledExtensionRemap(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "util.ts"))
	from := filepath.Join(root, "src", "main.ts")

	got, ok := Resolve(from, "./util.js", Options{Root: root, AllowedExtensions: defaultExts})
	if !ok {
		t.Fatal("expected compiled-extension remap to find the .ts source")
	}
	if got != filepath.Join(root, "src", "util.ts") {
		t.Errorf("unexpected path: %q", got)
	}
}

func TestResolve_AliasFallsThroughToBaseURLWhenUnmatched(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shared", "helpers.ts"))
	from := filepath.Join(root, "src", "main.ts")

	opts := Options{
		Root:    root,
		BaseURL: root,
		Aliases: []AliasRule{
			{Pattern: "@/*", Replacements: []string{"src/*"}},
		},
		AllowedExtensions: defaultExts,
	}

	got, ok := Resolve(from, "shared/helpers", opts)
	if !ok {
		t.Fatal("expected base_url fallback to resolve the bare specifier")
	}
	if got != filepath.Join(root, "shared", "helpers.ts") {
		t.Errorf("unexpected path: %q", got)
	}
}

func TestResolve_MultipleReplacementsTriesEachInOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fallback", "thing.ts"))
	from := filepath.Join(root, "src", "main.ts")

	opts := Options{
		Root:    root,
		BaseURL: root,
		Aliases: []AliasRule{
			{Pattern: "@/*", Replacements: []string{"src/*", "fallback/*"}},
		},
		AllowedExtensions: defaultExts,
	}

	got, ok := Resolve(from, "@/thing", opts)
	if !ok {
		t.Fatal("expected second replacement to resolve")
	}
	if got != filepath.Join(root, "fallback", "thing.ts") {
		t.Errorf("unexpected path: %q", got)
	}
}
