package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/dircontains/internal/types"
	"github.com/taigrr/dircontains/internal/uri"
)

var (
	foundColor    = color.New(color.FgGreen, color.Bold)
	notFoundColor = color.New(color.FgYellow)
	detailColor   = color.New(color.Faint)
)

type checkOptions struct {
	useRegex       bool
	skipUnreadable bool
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:     "check <text>",
		Short:   "Check whether text appears in the configured directory",
		Example: `dircontains check "selected text"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.useRegex, "regex", false, "treat the text as a regular expression")
	cmd.Flags().BoolVar(&opts.skipUnreadable, "skip-unreadable", false, "skip entries that cannot be read as text instead of failing")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, opts *checkOptions, text string) error {
	cfg, logger, err := setup(cmd, root)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("regex") {
		cfg.UseRegex = opts.useRegex
	}
	if cmd.Flags().Changed("skip-unreadable") {
		cfg.SkipUnreadable = opts.skipUnreadable
	}

	result, err := newSearcher(cfg, logger).Search(cmd.Context(), types.SearchParams{
		Directory: cfg.DirectoryPath,
		Term:      text,
	})
	if err != nil {
		logger.Error("search failed",
			zap.String("text", text),
			zap.String("directory", cfg.DirectoryPath),
			zap.Error(err),
		)
		return err
	}

	printVerdict(cmd.OutOrStdout(), text, result)
	return nil
}

func printVerdict(w io.Writer, text string, result types.SearchResult) {
	if result.Found {
		foundColor.Fprintf(w, "%q found", text)
		fmt.Fprintf(w, " in %s\n", result.MatchedPath)
		detailColor.Fprintf(w, "  %s\n", uri.FileURI(result.MatchedPath))
	} else {
		notFoundColor.Fprintf(w, "%q not found", text)
		fmt.Fprintf(w, " (%d files checked)\n", result.FilesChecked)
	}

	for _, path := range result.Skipped {
		detailColor.Fprintf(w, "  skipped %s\n", path)
	}
}
