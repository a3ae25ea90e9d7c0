package pathfilter

import (
	"testing"

	"github.com/taigrr/dircontains/internal/types"
)

func TestPathFilter_NoPatternsIgnoresNothing(t *testing.T) {
	filters := map[string]*PathFilter{
		"nil config":  New(nil),
		"empty":       New(&types.PathFilterConfig{}),
		"nil pointer": nil,
	}

	names := []string{".DS_Store", "notes.txt", "sub", ".git", "image.png"}

	for label, filter := range filters {
		t.Run(label, func(t *testing.T) {
			for _, name := range names {
				if filter.IsIgnored(name) {
					t.Errorf("IsIgnored(%q) = true, want false", name)
				}
			}
		})
	}
}

func TestPathFilter_IsIgnored(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{".DS_Store", "*.bak", "draft-?.txt", ".git**"},
	})

	tests := []struct {
		name string
		want bool
	}{
		{".DS_Store", true},
		{"notes.bak", true},
		{"draft-1.txt", true},
		{"draft-12.txt", false},
		{".git", true},
		{".gitignore", true},
		{"notes.txt", false},
		{"bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsIgnored(tt.name); got != tt.want {
				t.Errorf("IsIgnored(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPathFilter_SpecialCharsAreLiteral(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{"note (old).txt", "a+b.txt"},
	})

	if !filter.IsIgnored("note (old).txt") {
		t.Error("IsIgnored(\"note (old).txt\") = false, want true")
	}
	if filter.IsIgnored("note old.txt") {
		t.Error("parentheses should not act as a regex group")
	}
	if filter.IsIgnored("aab.txt") {
		t.Error("plus should not act as a regex quantifier")
	}
}

func TestPathFilter_BlankPatternsDropped(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{"", "   ", "*.tmp"},
	})

	if filter.Len() != 1 {
		t.Errorf("Len() = %d, want 1", filter.Len())
	}
}

func TestPathFilter_Filter(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns: []string{"*.tmp"},
	})

	got := filter.Filter([]string{"b.txt", "a.tmp", "c.md", "d.tmp"})
	want := []string{"b.txt", "c.md"}

	if len(got) != len(want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
