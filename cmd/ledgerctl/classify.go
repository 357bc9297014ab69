package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify-sheet",
		Short: "Classify every transaction of a sheet",
		RunE:  runClassifySheet,
	}

	cmd.Flags().String("client", "", "client ID (required)")
	cmd.Flags().String("sheet", "", "sheet ID (required)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("sheet")
	return cmd
}

func runClassifySheet(cmd *cobra.Command, _ []string) error {
	clientID, _ := cmd.Flags().GetString("client")
	sheetID, _ := cmd.Flags().GetString("sheet")

	ctx := cmd.Context()
	container, pool, err := openServices(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	stats, err := container.Classification.BulkClassify(ctx, clientID, sheetID)
	if err != nil {
		return fmt.Errorf("bulk classification failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Classified %d transactions\n", stats.Total)
	fmt.Fprintf(out, "  high confidence: %d (%.2f%%)\n", stats.HighConfidence, stats.HighConfidencePercentage)
	fmt.Fprintf(out, "  low confidence:  %d (%.2f%%)\n", stats.LowConfidence, stats.LowConfidencePercentage)
	fmt.Fprintf(out, "  uncategorized:   %d (%.2f%%)\n", stats.Uncategorized, stats.UncategorizedPercentage)
	return nil
}

func retrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrain",
		Short: "Recompute learned patterns from manual overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			container, pool, err := openServices(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			patterns, err := container.Classification.RetrainPatterns(ctx)
			if err != nil {
				return fmt.Errorf("retraining failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(patterns) == 0 {
				fmt.Fprintln(out, "No ledger has enough manual overrides to form a pattern.")
				return nil
			}
			for _, p := range patterns {
				fmt.Fprintf(out, "%-30s samples=%-4d confidence=%.2f\n", p.Ledger, p.SampleCount, p.Confidence)
			}
			return nil
		},
	}
}
