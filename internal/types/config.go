// Package types defines the data structures shared across dircontains.
package types

type (
	// Config is the loaded configuration document.
	Config struct {
		DirectoryPath  string   `yaml:"TEXT_DIRECTORY_PATH" json:"TEXT_DIRECTORY_PATH"`
		UseRegex       bool     `yaml:"USE_REGEX" json:"USE_REGEX,omitempty"`
		SkipUnreadable bool     `yaml:"SKIP_UNREADABLE" json:"SKIP_UNREADABLE,omitempty"`
		IgnorePatterns []string `yaml:"IGNORE_PATTERNS" json:"IGNORE_PATTERNS,omitempty"`
	}
)
