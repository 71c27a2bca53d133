package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vizmark/charts"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "list the registered chart types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range charts.Builtin().Types() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}

			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <type>...",
		Short: "check that chart types have registered definitions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := charts.Builtin().Verify(args...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("ok"), "all", len(args), "type(s) registered")

			return nil
		},
	}
}
