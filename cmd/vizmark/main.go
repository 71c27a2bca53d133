// Command vizmark is a shell inspector for the vizmark compute core:
// it reads a chart document (spec + data + size, JSON or YAML), runs the
// render pipeline, and prints the resulting model with its diagnostics.
// Useful for eyeballing mark geometry and debugging chart data without a
// renderer in the loop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vizmark:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vizmark",
		Short:         "compute and inspect chart render models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newTypesCmd(), newVerifyCmd())

	return root
}
