// Package search answers whether a term appears in any file of a directory.
package search

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/taigrr/dircontains/internal/filesystem"
	"github.com/taigrr/dircontains/internal/types"
)

// Reader lists directories and reads files as text.
type Reader interface {
	ListDirectory(dirPath string) ([]string, error)
	ReadText(path string) (string, error)
}

// Service searches the top level of a directory for a term.
type Service struct {
	reader         Reader
	logger         *zap.Logger
	useRegex       bool
	skipUnreadable bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegex makes terms be interpreted as regular expressions instead of
// literal text.
func WithRegex(useRegex bool) Option {
	return func(s *Service) {
		s.useRegex = useRegex
	}
}

// WithSkipUnreadable makes the search skip entries that cannot be read as
// text instead of failing.
func WithSkipUnreadable(skip bool) Option {
	return func(s *Service) {
		s.skipUnreadable = skip
	}
}

// New creates a new Service reading through r.
func New(r Reader, opts ...Option) *Service {
	s := &Service{
		reader: r,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compile builds the case-insensitive pattern for term. Unless useRegex is
// set, the term is escaped and matched literally.
func Compile(term string, useRegex bool) (*regexp.Regexp, error) {
	expr := term
	if !useRegex {
		expr = regexp.QuoteMeta(term)
	}

	pattern, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, &PatternError{Term: term, Err: err}
	}
	return pattern, nil
}

// FileContainsTerm reports whether the file at path contains term.
func (s *Service) FileContainsTerm(path, term string) (bool, error) {
	pattern, err := Compile(term, s.useRegex)
	if err != nil {
		return false, err
	}
	return s.fileMatches(path, pattern)
}

func (s *Service) fileMatches(path string, pattern *regexp.Regexp) (bool, error) {
	content, err := s.reader.ReadText(path)
	if err != nil {
		return false, err
	}
	return pattern.MatchString(content), nil
}

// SearchDirectory reports whether any entry directly inside dirPath contains
// term. Entries are tested in listing order and the search stops at the first
// match.
func (s *Service) SearchDirectory(ctx context.Context, dirPath, term string) (bool, error) {
	result, err := s.Search(ctx, types.SearchParams{
		Directory: dirPath,
		Term:      term,
	})
	if err != nil {
		return false, err
	}
	return result.Found, nil
}

// Search is SearchDirectory with details about which file matched and how
// many entries were read.
func (s *Service) Search(ctx context.Context, params types.SearchParams) (types.SearchResult, error) {
	pattern, err := Compile(params.Term, s.useRegex)
	if err != nil {
		return types.SearchResult{}, err
	}

	paths, err := s.reader.ListDirectory(params.Directory)
	if err != nil {
		return types.SearchResult{}, err
	}

	s.logger.Debug("listed directory",
		zap.String("directory", params.Directory),
		zap.Int("entries", len(paths)),
	)

	var result types.SearchResult
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return types.SearchResult{}, err
		}

		matched, err := s.fileMatches(path, pattern)
		if err != nil {
			var readErr *filesystem.FileReadError
			if s.skipUnreadable && errors.As(err, &readErr) {
				s.logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
				result.Skipped = append(result.Skipped, path)
				continue
			}
			return types.SearchResult{}, err
		}
		result.FilesChecked++

		s.logger.Debug("checked file", zap.String("path", path), zap.Bool("matched", matched))

		if matched {
			result.Found = true
			result.MatchedPath = path
			return result, nil
		}
	}

	return result, nil
}

// PatternError is returned when a term cannot be compiled as a pattern.
type PatternError struct {
	Term string
	Err  error
}

func (e *PatternError) Error() string {
	return "invalid search pattern " + `"` + e.Term + `": ` + e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
