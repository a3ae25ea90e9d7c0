// Package pathfilter provides glob filtering for directory entries.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/dircontains/internal/types"
)

// PathFilter drops directory entries whose names match an ignore pattern.
// A nil *PathFilter, or one built without patterns, ignores nothing.
type PathFilter struct {
	ignored []*regexp.Regexp
}

// New creates a new PathFilter with the given configuration.
// Patterns that fail to compile are dropped.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{}
	if config == nil {
		return pf
	}

	for _, pattern := range config.IgnoredPatterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}
		if re, err := globToRegexp(pattern); err == nil {
			pf.ignored = append(pf.ignored, re)
		}
	}

	return pf
}

// globToRegexp converts a glob pattern into an anchored regular expression.
func globToRegexp(pattern string) (*regexp.Regexp, error) {
	// Normalize pattern path separators (Windows compatibility)
	normalized := strings.ReplaceAll(pattern, "\\", "/")

	// Escape all regex special chars first
	regexPattern := regexp.QuoteMeta(normalized)

	// Convert glob patterns (unescape the escaped versions)
	regexPattern = strings.ReplaceAll(regexPattern, `\*\*`, ".*")  // ** matches any
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, "[^/]*") // * matches non-slash
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, "[^/]")  // ? matches single char

	return regexp.Compile("^" + regexPattern + "$")
}

// IsIgnored reports whether an entry name matches any ignore pattern.
func (pf *PathFilter) IsIgnored(name string) bool {
	if pf == nil {
		return false
	}

	normalized := strings.ReplaceAll(name, "\\", "/")
	for _, re := range pf.ignored {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

// Len returns the number of active patterns.
func (pf *PathFilter) Len() int {
	if pf == nil {
		return 0
	}
	return len(pf.ignored)
}

// Filter returns the names that are not ignored, preserving order.
func (pf *PathFilter) Filter(names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if !pf.IsIgnored(name) {
			kept = append(kept, name)
		}
	}
	return kept
}
