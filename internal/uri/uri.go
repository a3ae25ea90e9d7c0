// Package uri builds file URIs for matched files.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI returns a file:/// URI for path. Relative paths are made absolute
// against the working directory first.
func FileURI(path string) string {
	absolutePath := path
	if abs, err := filepath.Abs(path); err == nil {
		absolutePath = abs
	}
	absolutePath = filepath.ToSlash(absolutePath)

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(absolutePath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encodedPath := strings.Join(parts, "/")

	// Remove leading slash since we add file:/// prefix
	encodedPath = strings.TrimPrefix(encodedPath, "/")

	return "file:///" + encodedPath
}
