package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Fuabioo/ghmcp/internal/ops"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Long: `Lists every tool the MCP server advertises, in advertised order.

Outputs a table by default, or the full parameter descriptors with --json.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

type paramJSON struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
}

type toolJSON struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []paramJSON `json:"params"`
}

func runTools(cmd *cobra.Command, args []string) error {
	operations := ops.Operations()

	if flagJSON {
		output := make([]toolJSON, 0, len(operations))
		for _, op := range operations {
			params := make([]paramJSON, 0, len(op.Params))
			for _, p := range op.Params {
				params = append(params, paramJSON{
					Name:        p.Name,
					Type:        string(p.Type),
					Description: p.Description,
					Required:    p.Required,
					Enum:        p.Enum,
					Default:     p.Default,
				})
			}
			output = append(output, toolJSON{Name: op.Name, Description: op.Description, Params: params})
		}
		return outputJSON(output)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tARGUMENTS\tDESCRIPTION")

	for _, op := range operations {
		names := make([]string, 0, len(op.Params))
		for _, p := range op.Params {
			if p.Required {
				names = append(names, p.Name)
			} else {
				names = append(names, "["+p.Name+"]")
			}
		}
		arguments := strings.Join(names, " ")
		if arguments == "" {
			arguments = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", op.Name, arguments, op.Description)
	}

	return w.Flush()
}
