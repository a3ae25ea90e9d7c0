// Package filesystem provides directory listing and text reading for searches.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/taigrr/dircontains/internal/pathfilter"
)

// ErrNotText is wrapped by FileReadError when content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// Service lists directories and reads files as text.
type Service struct {
	pathFilter *pathfilter.PathFilter
}

// New creates a new Service. A nil filter keeps every entry.
func New(pf *pathfilter.PathFilter) *Service {
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Service{pathFilter: pf}
}

// ListDirectory returns the path of every entry directly inside dirPath,
// files and subdirectories alike, in the order os.ReadDir yields them.
func (s *Service) ListDirectory(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &DirectoryAccessError{Path: dirPath, Err: describe(err)}
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.pathFilter.IsIgnored(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dirPath, entry.Name()))
	}

	return paths, nil
}

// ReadText reads the whole file at path and returns it as a string.
func (s *Service) ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: describe(err)}
	}

	if !utf8.Valid(content) {
		return "", &FileReadError{Path: path, Err: ErrNotText}
	}

	return string(content), nil
}

// describe maps common failure causes to short messages while keeping the
// original error reachable through errors.Is.
func describe(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("not found: %w", err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("permission denied: %w", err)
	default:
		return err
	}
}
