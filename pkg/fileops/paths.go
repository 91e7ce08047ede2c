// Package fileops provides path resolution helpers with protection against
// path traversal. Callers hand it untrusted relative paths; it hands back
// absolute paths that are guaranteed to stay inside a given root.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a path that starts with "~/" to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ResolveUnder joins rel against root and returns the absolute result.
// The relative path is cleaned first; absolute paths and paths that climb
// out of root (e.g. "../x") are rejected rather than resolved.
func ResolveUnder(root, rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("absolute paths are not allowed: %s", rel)
	}

	cleaned := filepath.Clean(rel)
	if !filepath.IsLocal(cleaned) {
		return "", fmt.Errorf("path escapes the root directory: %s", rel)
	}

	return filepath.Join(root, cleaned), nil
}
