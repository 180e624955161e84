package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// probe turns a candidate path (which may be missing its extension, or may
// name a directory) into a resolved file path, trying in order:
//
//  1. the candidate itself
//  2. the candidate with each allowed extension appended
//  3. an index file inside the candidate directory, for each extension
//  4. if the candidate ends in ".js", the compiled-extension remap to
//     ".ts" then ".tsx" (a TypeScript project resolving its own emitted
//     import of a sibling source file)
func probe(candidate string, exts []string) (string, bool) {
	if isRegularFile(candidate) {
		return candidate, true
	}

	for _, ext := range exts {
		c := candidate + ext
		if isRegularFile(c) {
			return c, true
		}
	}

	for _, ext := range exts {
		c := filepath.Join(candidate, "index"+ext)
		if isRegularFile(c) {
			return c, true
		}
	}

	if strings.HasSuffix(candidate, ".js") {
		stem := strings.TrimSuffix(candidate, ".js")
		if isRegularFile(stem + ".ts") {
			return stem + ".ts", true
		}
		if isRegularFile(stem + ".tsx") {
			return stem + ".tsx", true
		}
	}

	return "", false
}
