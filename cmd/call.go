package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/aquarium-mcp/internal/shared/cmdutils"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

var callCmd = &cobra.Command{
	Use:     "call <tool> [key=value ...]",
	Short:   "Invoke one Aquarium tool and print the result",
	Example: "  aquarium-mcp call get_detail_values_by_field_ids field_ids=1,2 case_id=11",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runCall,
}

func runCall(_ *cobra.Command, args []string) error {
	params, err := cmdutils.ParseAssignments(args[1:])
	if err != nil {
		return err
	}

	container, err := newContainer()
	if err != nil {
		return err
	}
	catalog, err := container.Catalog()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := catalog.Invoke(ctx, args[0], params)
	if err != nil {
		return err
	}
	out, err := tools.Render(result)
	if err != nil {
		return err
	}
	if _, isText := result.(string); !isText {
		var buf bytes.Buffer
		if json.Indent(&buf, []byte(out), "", "  ") == nil {
			out = buf.String()
		}
	}
	fmt.Println(out)
	return nil
}
