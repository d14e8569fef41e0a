package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/metrics"
	"github.com/loom-ui/loom/pkg/middleware"
	"github.com/loom-ui/loom/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		address    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			m := metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))

			srv := server.New(server.Options{
				Config:  cfg,
				Root:    newAppRuntime(m),
				Logger:  logger,
				Metrics: m,
				HTTPMiddleware: []func(http.Handler) http.Handler{
					middleware.Prometheus(middleware.WithNamespace(cfg.Metrics.Namespace)),
				},
			})

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "loom.yaml", "path to configuration file")
	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (overrides config)")
	return cmd
}
