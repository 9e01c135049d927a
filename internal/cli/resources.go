package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Fuabioo/ghmcp/internal/ops"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources [uri]",
	Short: "List resources, or read one",
	Long: `Without arguments, lists the resources the MCP server advertises.
With a URI, reads that resource and prints its JSON content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResources,
}

func runResources(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		client, logger, err := newClient()
		if err != nil {
			return err
		}

		value, err := ops.NewResourceReader(client, logger).Read(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return outputJSON(value)
	}

	resources := ops.Resources()

	if flagJSON {
		output := make([]map[string]string, 0, len(resources))
		for _, r := range resources {
			output = append(output, map[string]string{
				"uri":         r.URI,
				"name":        r.Name,
				"description": r.Description,
				"mimeType":    r.MIMEType,
			})
		}
		return outputJSON(output)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "URI\tNAME\tDESCRIPTION")
	for _, r := range resources {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.URI, r.Name, r.Description)
	}
	return w.Flush()
}
