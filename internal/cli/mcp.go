package cli

import (
	"os"

	"github.com/Fuabioo/ghmcp/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server on stdio",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

This command is used by MCP clients (Claude Desktop, etc.) to communicate
with ghmcp. It should not be run directly by users.

GITHUB_TOKEN must be set, either in the environment or in the config file.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	if isTerminal(os.Stdin) {
		logger.Warn("stdin is a terminal; ghmcp mcp expects an MCP client on the other end")
	}

	return mcp.Serve(cmd.Context(), cfg, Version, logger)
}
