package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cli/browser"
	"github.com/spf13/cobra"

	"github.com/Zachdehooge/temperature-heatmap/internal/config"
	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/generator"
	"github.com/Zachdehooge/temperature-heatmap/internal/logging"
	"github.com/Zachdehooge/temperature-heatmap/internal/scheduler"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

var (
	outputFile string
	svgFile    string
	datasetURL string
	verbose    bool
	openPage   bool
	interval   int
	watchMode  bool

	cfg config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Fetch global temperatures and generate the heat map HTML",
		Long: `Heatmap fetches the monthly global land-surface temperature dataset
and renders it as a heat map in a static HTML page.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if datasetURL != "" {
				cfg.DatasetURL = datasetURL
			}
			slog.SetDefault(logging.New(os.Stderr, cfg, version, "heatmap"))
			return generator.LoadTemplates()
		},
		Run: func(cmd *cobra.Command, args []string) {
			client := fetcher.NewClient(cfg.DatasetURL, cfg.FetchTimeout)

			if watchMode {
				runWatchMode(cmd, client)
				return
			}

			if err := generateHeatmapHTML(cmd.Context(), cmd, client, 0); err != nil {
				slog.Error("failed to generate heat map", "err", err)
				os.Exit(1)
			}
			openOutput(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&datasetURL, "url", "", "Dataset URL (overrides DATASET_URL)")

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "heatmap.html", "Output HTML file path")
	rootCmd.Flags().StringVar(&svgFile, "svg", "", "Also write the standalone SVG to this path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVar(&openPage, "open", false, "Open the generated page in the default browser")
	rootCmd.Flags().IntVarP(&interval, "interval", "i", 3600, "Update interval in seconds (minimum 30)")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Continuously regenerate the heat map HTML")

	addSummaryCmd(rootCmd)
	addServeCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// generateHeatmapHTML fetches the dataset and writes the page. When the
// dataset cannot be loaded the empty frame page is written instead and the
// load error is returned.
func generateHeatmapHTML(ctx context.Context, cmd *cobra.Command, client *fetcher.Client, refresh int) error {
	if verbose {
		cmd.Println(fmt.Sprintf("Fetching dataset from %s...", client.URL()))
	}

	ds, err := client.FetchDataset(ctx)
	if err != nil {
		if ferr := generator.GenerateFrameHTML(outputFile, refresh); ferr != nil {
			slog.Error("failed to write frame page", "path", outputFile, "err", ferr)
		}
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	if verbose {
		cmd.Println(fmt.Sprintf("Generating HTML to %s...", outputFile))
	}

	chart := generator.BuildChart(ds)
	if err := generator.GenerateHeatmapHTML(chart, outputFile, refresh); err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}
	if svgFile != "" {
		if err := generator.WriteSVGFile(chart, svgFile); err != nil {
			return err
		}
	}

	cmd.Println(fmt.Sprintf("Heat map of %d records saved to %s", len(chart.Cells), outputFile))
	return nil
}

func openOutput(cmd *cobra.Command) {
	if !openPage {
		return
	}
	if err := browser.OpenFile(outputFile); err != nil {
		cmd.PrintErrln(fmt.Errorf("failed to open %s: %w", outputFile, err))
	}
}

// runWatchMode regenerates the page every interval until interrupted. The
// page reloads itself on the same interval.
func runWatchMode(cmd *cobra.Command, client *fetcher.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sch := scheduler.New(time.Duration(interval)*time.Second, cfg.FetchTimeout, func(ctx context.Context) error {
		return generateHeatmapHTML(ctx, cmd, client, interval)
	})
	every := sch.Interval()
	interval = int(every / time.Second)

	if err := generateHeatmapHTML(ctx, cmd, client, interval); err != nil {
		slog.Error("initial generation failed", "err", err)
	}
	openOutput(cmd)

	cmd.Println(fmt.Sprintf("Watch mode activated. Updating every %s. Press Ctrl+C to stop.", every))
	sch.SkipInitialRun()
	if err := sch.Start(); err != nil {
		slog.Error("failed to start scheduler", "err", err)
		os.Exit(1)
	}
	defer sch.Stop()

	<-ctx.Done()
	cmd.Println("Stopping watch mode.")
}
