package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return content, nil
}

func lowerExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func unsupportedFileType(path string) error {
	return fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
}

func extensionSet(ordered []string) map[string]bool {
	if ordered == nil {
		return nil
	}
	out := make(map[string]bool, len(ordered))
	for _, e := range ordered {
		out[e] = true
	}
	return out
}

// defaultExtensionOrder is the probe order the resolver falls back to when
// the caller doesn't supply one: typed extensions before untyped, mirroring
// a project that authors in TypeScript but may still emit plain JS.
func defaultExtensionOrder(ordered []string) []string {
	if ordered != nil {
		return ordered
	}
	return []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs"}
}
