package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/aquarium-mcp/internal/httpapi"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the Aquarium tools with their routes and parameters",
	RunE: func(_ *cobra.Command, _ []string) error {
		// Listing never calls the CRM, so no client is needed.
		catalog := tools.NewCatalog(nil)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOOL\tRESULT\tROUTE\tPARAMETERS")
		for _, t := range catalog.All() {
			spec := t.Spec()
			fmt.Fprintf(w, "%s\t%s\tGET %s%s\t%s\n",
				spec.Name, spec.Kind(), httpapi.AquariumPrefix, spec.Path, describeParams(spec.Params))
		}
		return w.Flush()
	},
}

func describeParams(params []tools.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := p.Name + ":" + string(p.Type)
		if !p.Required {
			s += "?"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
