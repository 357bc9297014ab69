package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan one client for red flags",
		RunE:  runScan,
	}

	cmd.Flags().String("client", "", "client ID (required)")
	cmd.Flags().String("sheet", "", "limit the scan to one sheet")
	cmd.Flags().String("from", "", "first transaction date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "last transaction date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	clientID, _ := cmd.Flags().GetString("client")
	sheetID, _ := cmd.Flags().GetString("sheet")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")

	from, err := parseDate("from", fromFlag)
	if err != nil {
		return err
	}
	to, err := parseDate("to", toFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	container, pool, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	scope := domain.TransactionScope{ClientID: clientID, SheetID: sheetID, From: from, To: to}
	flags, summary, err := container.RedFlag.ScanForRedFlags(ctx, scope)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, f := range flags {
		fmt.Fprintf(out, "[%-6s] %-24s %s  %s\n", f.Severity, f.FlagType, f.TransactionID, f.Message)
	}
	printSummary(out, *summary)
	return nil
}

func scanAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan-all",
		Short: "Scan every client with live transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			container, pool, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			// The client count is unknown up front, so the bar runs as a spinner
			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetDescription("Scanning clients"),
			)

			summaries, err := container.RedFlag.ScanAllClients(ctx, func(s domain.ScanSummary) {
				bar.Describe("Scanned " + s.ClientID)
				_ = bar.Add(1)
			})
			_ = bar.Finish()
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("batch scan failed: %w", err)
			}

			failed := 0
			for _, s := range summaries {
				printSummary(cmd.OutOrStdout(), s)
				if s.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d clients failed to scan", failed, len(summaries))
			}
			return nil
		},
	}
}

func printSummary(out io.Writer, s domain.ScanSummary) {
	if s.Error != "" {
		fmt.Fprintf(out, "client %s: FAILED: %s\n", s.ClientID, s.Error)
		return
	}
	fmt.Fprintf(out, "client %s: scanned=%d created=%d skipped=%d\n",
		s.ClientID, s.TransactionsScanned, s.FlagsCreated, s.FlagsSkipped)
}
