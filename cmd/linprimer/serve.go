package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/san-kum/linprimer/internal/metrics"
	"github.com/san-kum/linprimer/internal/server"
	"github.com/san-kum/linprimer/internal/tui"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve sections, frames and formatting as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv := &http.Server{
				Addr: cfg.Server.Addr,
				Handler: server.New(server.Options{
					CacheTTL:  cfg.Server.CacheTTL,
					Precision: cfg.Precision,
					Logger:    logger,
					Metrics:   metrics.NewCollectors(reg),
				}).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				tui.PrintBanner(os.Stdout)
				logger.Info("server listening", "addr", srv.Addr, "cache_ttl", cfg.Server.CacheTTL)
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server: %w", err)

			case sig := <-shutdown:
				logger.Info("shutting down", "signal", sig.String())

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					logger.Error("graceful shutdown did not complete", "error", err)
					return srv.Close()
				}
				logger.Info("server stopped")
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
