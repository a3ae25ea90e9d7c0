package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/dircontains/internal/types"
	"github.com/taigrr/dircontains/internal/uri"
)

type (
	// StringSearchInput contains parameters for the string_search tool.
	StringSearchInput struct {
		Text     string `json:"text" jsonschema:"Selected text to look for (case-insensitive)"`
		UseRegex *bool  `json:"useRegex,omitempty" jsonschema:"Treat text as a regex pattern (default: from config)"`
	}

	// StringSearchOutput contains the result of the string_search tool.
	StringSearchOutput struct {
		Found        bool     `json:"found"`
		Text         string   `json:"text"`
		MatchedPath  string   `json:"matchedPath,omitempty"`
		URI          string   `json:"uri,omitempty"`
		FilesChecked int      `json:"filesChecked"`
		Skipped      []string `json:"skipped,omitempty"`
	}
)

// server answers tool calls against one loaded configuration.
type server struct {
	cfg    types.Config
	logger *zap.Logger
}

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the string_search tool over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer logger.Sync()

			srv := &server{cfg: cfg, logger: logger}

			mcpServer := mcp.NewServer(&mcp.Implementation{
				Name:    "dircontains",
				Version: version,
			}, nil)
			srv.registerTools(mcpServer)

			logger.Info("serving over stdio", zap.String("directory", cfg.DirectoryPath))

			if err := mcpServer.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}

func (s *server) registerTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "string_search",
		Description: "Check whether text appears, ignoring case, in any file directly inside the configured directory. Stops at the first matching file.",
	}, s.handleStringSearch)
}

func (s *server) handleStringSearch(ctx context.Context, req *mcp.CallToolRequest, input StringSearchInput) (*mcp.CallToolResult, StringSearchOutput, error) {
	cfg := s.cfg
	if input.UseRegex != nil {
		cfg.UseRegex = *input.UseRegex
	}

	result, err := newSearcher(cfg, s.logger).Search(ctx, types.SearchParams{
		Directory: cfg.DirectoryPath,
		Term:      input.Text,
	})
	if err != nil {
		s.logger.Error("search failed",
			zap.String("text", input.Text),
			zap.String("directory", cfg.DirectoryPath),
			zap.Error(err),
		)
		return &mcp.CallToolResult{IsError: true}, StringSearchOutput{Text: input.Text}, err
	}

	s.logger.Info("search finished",
		zap.String("text", input.Text),
		zap.Bool("found", result.Found),
		zap.Int("filesChecked", result.FilesChecked),
	)

	output := StringSearchOutput{
		Found:        result.Found,
		Text:         input.Text,
		MatchedPath:  result.MatchedPath,
		FilesChecked: result.FilesChecked,
		Skipped:      result.Skipped,
	}
	if result.Found {
		output.URI = uri.FileURI(result.MatchedPath)
	}

	return nil, output, nil
}
