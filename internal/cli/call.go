package cli

import (
	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/Fuabioo/ghmcp/internal/ops"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value...]",
	Short: "Call one tool and print its result",
	Long: `Calls a tool the same way an MCP client would and prints the reshaped
JSON result to stdout.

Examples:
  ghmcp call get_user
  ghmcp call list_issues owner=golang repo=go state=closed limit=5
  ghmcp call get_file_contents owner=golang repo=go path=README.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	toolArgs, err := parseCallArgs(args[1:])
	if err != nil {
		return err
	}

	// Reject unknown tools before requiring a token.
	if _, ok := ops.Lookup(args[0]); !ok {
		return errors.UnknownTool(args[0])
	}

	client, logger, err := newClient()
	if err != nil {
		return err
	}

	result := ops.NewDispatcher(client, logger).Invoke(cmd.Context(), args[0], toolArgs)
	if result.Failed {
		code := result.Code
		if code == "" {
			code = errors.CodeInternal
		}
		return errors.New(code, result.Message)
	}

	return outputJSON(result.Payload)
}
