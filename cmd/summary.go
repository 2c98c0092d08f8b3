package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/generator"
)

// addSummaryCmd adds a 'summary' subcommand that prints dataset statistics
// and the legend buckets without generating HTML.
func addSummaryCmd(rootCmd *cobra.Command) {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print dataset statistics and the legend buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := fetcher.NewClient(cfg.DatasetURL, cfg.FetchTimeout)
			ds, err := client.FetchDataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}
			return generator.WriteSummary(cmd.OutOrStdout(), generator.Summarize(ds))
		},
	}

	rootCmd.AddCommand(summaryCmd)
}
