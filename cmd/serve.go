package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"football/internal/api"
	"football/internal/config"
	"football/internal/worker"
	"football/pkg/logger"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc, closeCache := getService(ctx, cfg, strg)
			defer closeCache()

			workerOpts, err := worker.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid sync configuration", zap.Error(err))
			}
			// workers are stopped explicitly so running jobs can finish
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, worker.Deps{
				Client:  getClient(ctx, cfg),
				Storage: strg,
			}, workerOpts)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{Service: svc}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err //nolint: wrapcheck
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failing server
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers gracefully", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "webserver failed", zap.Error(err))
			}
		},
	}

	return cmd
}
