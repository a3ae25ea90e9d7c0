// Package main implements the dircontains command.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/dircontains/internal/config"
	"github.com/taigrr/dircontains/internal/filesystem"
	"github.com/taigrr/dircontains/internal/logging"
	"github.com/taigrr/dircontains/internal/pathfilter"
	"github.com/taigrr/dircontains/internal/search"
	"github.com/taigrr/dircontains/internal/types"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dircontains",
		Short: "Check whether selected text appears in a directory of files",
		Long: `dircontains reports whether a piece of text appears, ignoring case,
in any file directly inside the directory named by TEXT_DIRECTORY_PATH
in the configuration document.

Use "check" for a one-off lookup, or "serve" to expose the lookup as an
MCP tool so an editor or assistant can send the current selection.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the JSON or YAML configuration document")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newCheckCommand(opts), newServeCommand(opts))

	return cmd
}

// setup loads the configuration and builds the logger for a command run.
func setup(cmd *cobra.Command, opts *rootOptions) (types.Config, *zap.Logger, error) {
	logger, err := logging.New(opts.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return types.Config{}, nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("failed to load configuration", zap.String("path", opts.configPath), zap.Error(err))
		return types.Config{}, nil, err
	}

	logger.Debug("loaded configuration",
		zap.String("directory", cfg.DirectoryPath),
		zap.Bool("useRegex", cfg.UseRegex),
		zap.Bool("skipUnreadable", cfg.SkipUnreadable),
		zap.Strings("ignorePatterns", cfg.IgnorePatterns),
	)

	return cfg, logger, nil
}

// newSearcher wires the filesystem reader and search service for cfg.
func newSearcher(cfg types.Config, logger *zap.Logger) *search.Service {
	pf := pathfilter.New(&types.PathFilterConfig{IgnoredPatterns: cfg.IgnorePatterns})
	return search.New(
		filesystem.New(pf),
		search.WithLogger(logger),
		search.WithRegex(cfg.UseRegex),
		search.WithSkipUnreadable(cfg.SkipUnreadable),
	)
}
