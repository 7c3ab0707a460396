package main

import (
	"context"
	"errors"
	"homecatalog/internal/api"
	"homecatalog/internal/api/handler/v1handler"
	"homecatalog/internal/catalog"
	"homecatalog/internal/config"
	"homecatalog/internal/worker"
	"homecatalog/pkg/bgg/bggxml"
	"homecatalog/pkg/logger"
	"homecatalog/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer builds the HTTP server from the catalog service and the running
// river client, starts it in the background and returns a shutdown function.
func setupServer(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	cat catalog.Catalog,
	riverClient *river.Client[pgx.Tx]) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Catalog: cat,
		},
		RiverClient: riverClient,
		DBPool:      strg.Pool,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that runs the API server and
// the background import workers until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			bggClient := bggxml.New(&http.Client{
				Timeout: cfg.BGG.RequestTimeout,
			}, cfg.BGG.BaseURL)

			cat := catalog.New(strg, bggClient, catalog.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, cat, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, strg, cat, riverClient)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
