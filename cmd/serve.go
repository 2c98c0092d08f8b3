package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/scheduler"
	"github.com/Zachdehooge/temperature-heatmap/internal/server"
	"github.com/Zachdehooge/temperature-heatmap/internal/service"
	"github.com/Zachdehooge/temperature-heatmap/internal/store"
)

const shutdownTimeout = 10 * time.Second

// addServeCmd adds a 'serve' subcommand that serves the heat map over HTTP
// and re-renders it periodically.
func addServeCmd(rootCmd *cobra.Command) {
	var (
		addr    string
		refresh time.Duration
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the heat map, its SVG and the dataset over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr = addr
			}
			if cmd.Flags().Changed("refresh") {
				cfg.RefreshInterval = refresh
			}
			return runServer(cmd.Context())
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address (overrides HTTP_ADDR)")
	serveCmd.Flags().DurationVar(&refresh, "refresh", time.Hour, "Re-render interval (overrides REFRESH_INTERVAL, minimum 30s)")

	rootCmd.AddCommand(serveCmd)
}

func runServer(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := fetcher.NewClient(cfg.DatasetURL, cfg.FetchTimeout)
	svc := service.NewService(client, store.NewMemoryStore(), 0)
	app := server.NewApp(svc)
	sch := scheduler.New(cfg.RefreshInterval, cfg.FetchTimeout, svc.Refresh)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server listening", "addr", cfg.HTTPAddr, "dataset", client.URL())
		return app.Listen(cfg.HTTPAddr)
	})

	g.Go(func() error {
		startErr := sch.Start()
		if startErr == nil {
			<-gctx.Done()
			sch.Stop()
		}

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("shutting down http server")
		if err := app.ShutdownWithContext(sctx); err != nil {
			return err
		}
		return startErr
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server stopped with error", "err", err)
		return err
	}
	return nil
}
