package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesAliasesAndIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loopscan.yaml")

	contents := `
baseUrl: src
aliases:
  - pattern: "@/*"
    replacements: ["src/*"]
  - pattern: "legacy-shim"
    replacements: ["vendor/shim"]
ignoreDirs: ["node_modules", "scripts"]
ignorePatterns: ["*.generated.ts"]
allowedExtensions: [".ts", ".tsx"]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if f.BaseURL != "src" {
		t.Errorf("unexpected baseUrl: %q", f.BaseURL)
	}
	if len(f.Aliases) != 2 || f.Aliases[0].Pattern != "@/*" {
		t.Fatalf("unexpected aliases: %+v", f.Aliases)
	}

	rules := f.ResolveAliases()
	if len(rules) != 2 || rules[0].Replacements[0] != "src/*" {
		t.Fatalf("unexpected resolve rules: %+v", rules)
	}

	dirs := f.IgnoreDirSet()
	if !dirs["node_modules"] || !dirs["scripts"] {
		t.Errorf("unexpected ignore dir set: %v", dirs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestIgnoreDirSet_NilWhenUnset(t *testing.T) {
	f := &File{}
	if f.IgnoreDirSet() != nil {
		t.Error("expected nil ignore dir set when unset")
	}
}
