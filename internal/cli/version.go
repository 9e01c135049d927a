package cli

import (
	"fmt"

	"github.com/Fuabioo/ghmcp/internal/mcp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Displays the version and commit hash of ghmcp, along with the
semantic version the MCP server reports to clients in serverInfo.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	advertised := mcp.AdvertisedVersion(Version)

	if flagJSON {
		return outputJSON(map[string]any{
			"version":    Version,
			"commit":     Commit,
			"advertised": advertised,
		})
	}

	fmt.Printf("ghmcp version %s\n", GetVersion())
	fmt.Printf("mcp server version %s\n", advertised)
	return nil
}
