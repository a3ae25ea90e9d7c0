// Package config loads the dircontains configuration document.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/dircontains/internal/types"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "env.json"

// ErrMissingDirectory is wrapped by ConfigLoadError when the document does not
// name a directory to search.
var ErrMissingDirectory = errors.New("TEXT_DIRECTORY_PATH is not set")

// ConfigLoadError is returned when the configuration cannot be loaded.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads the document at path. JSON and YAML are both accepted.
func Load(path string) (types.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, &ConfigLoadError{Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return types.Config{}, &ConfigLoadError{Path: path, Err: err}
	}

	return cfg, nil
}

// Parse decodes a configuration document.
func Parse(data []byte) (types.Config, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return types.Config{}, fmt.Errorf("invalid document: %w", err)
	}

	// An empty document decodes to a zero node.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return types.Config{}, fmt.Errorf("invalid document: expected a key-value mapping")
	}

	var cfg types.Config
	if err := node.Content[0].Decode(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("invalid document: %w", err)
	}

	cfg.DirectoryPath = strings.TrimSpace(cfg.DirectoryPath)
	if cfg.DirectoryPath == "" {
		return types.Config{}, ErrMissingDirectory
	}

	return cfg, nil
}
