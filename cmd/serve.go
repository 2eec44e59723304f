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
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AryanKharia/hybridreality-Vercel/internal/api"
	"github.com/AryanKharia/hybridreality-Vercel/internal/config"
	"github.com/AryanKharia/hybridreality-Vercel/internal/exports"
	"github.com/AryanKharia/hybridreality-Vercel/internal/stats"
	"github.com/AryanKharia/hybridreality-Vercel/internal/worker"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage/postgres"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/supervisor"
)

// pingRetryInterval is the delay between database connection attempts at startup.
const pingRetryInterval = 5 * time.Second

// serveCommand constructs the 'serve' subcommand running the web server and
// the background workers. The server starts serving immediately; workers
// start once the database answers a ping. Any background fault exits the
// process with status 1.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the web server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := exports.EnsureDir(cfg.Exports.Dir); err != nil {
				logger.Fatal(ctx, "could not prepare exports directory", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			collector, err := stats.NewCollector(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create stats collector", zap.Error(err))
			}

			server, err := api.NewServer(ctx, api.Deps{
				Storage:   strg,
				Collector: collector,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			sup := supervisor.New(ctx)

			sup.Go("webserver", func(ctx context.Context) error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))

				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})

			sup.Go("workers", func(ctx context.Context) error {
				if err := waitForDatabase(ctx, strg); err != nil {
					return err
				}

				client, err := worker.Start(ctx, strg.Pool, collector, strg, worker.NewOptions(cfg))
				if err != nil {
					return err
				}

				<-ctx.Done()

				stopCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				if err := client.Stop(stopCtx); err != nil {
					logger.Warn(ctx, "could not stop river queue client", zap.Error(err))
				}

				return nil
			})

			select {
			case fault := <-sup.Fault():
				logger.Error(ctx, "background task failed, exiting...",
					zap.String("task", fault.Task),
					zap.Error(fault.Err),
					zap.ByteString("stack", fault.Stack))
				_ = logger.Get(ctx).Sync()
				os.Exit(1)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping webserver...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop webserver", zap.Error(err))
			}

			if err := sup.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not stop background tasks", zap.Error(err))
			}
		},
	}

	return cmd
}

// waitForDatabase pings the database until it answers, so request serving
// never waits on connectivity. Returns ctx.Err() when the context ends first;
// API routes needing the database keep failing individually until then.
func waitForDatabase(ctx context.Context, strg *postgres.PgSQL) error {
	for attempt := 1; ; attempt++ {
		err := strg.Ping(ctx)
		if err == nil {
			logger.Info(ctx, "database connection established", zap.Int("attempt", attempt))

			return nil
		}

		logger.Warn(ctx, "could not reach database, retrying...",
			zap.Int("attempt", attempt),
			zap.Duration("retryIn", pingRetryInterval),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err() //nolint: wrapcheck
		case <-time.After(pingRetryInterval):
		}
	}
}
