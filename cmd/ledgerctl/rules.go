package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the rule table",
	}

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Load a YAML rule file on top of the built-in table and report what it defines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			table, err := rules.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d ledgers, %d TDS sections, capital threshold %s\n",
				len(table.Ledgers), len(table.TDSSections), table.CapitalThreshold.String())
			for _, name := range table.LedgerNames() {
				fmt.Fprintln(out, "  "+name)
			}
			return nil
		},
	}

	cmd.AddCommand(validate)
	return cmd
}
