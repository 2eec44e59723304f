// Package worker runs the background job queue: periodic flushes of request
// statistics and sweeps of the exports directory, processed by River on top
// of the application's Postgres pool.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/internal/config"
	"github.com/AryanKharia/hybridreality-Vercel/internal/stats"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background worker runtime and its periodic jobs.
type Options struct {
	// MaxWorkers limits how many jobs run concurrently on the default queue.
	MaxWorkers int

	// StatsFlushInterval is the period of the request stats flush job.
	StatsFlushInterval time.Duration

	// ExportsDir is the directory the sweep job cleans.
	ExportsDir string
	// ExportsMaxAge is the retention age of export files.
	ExportsMaxAge time.Duration
	// ExportsSweepInterval is the period of the sweep job.
	ExportsSweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:           cfg.Worker.MaxWorkers,
		StatsFlushInterval:   cfg.Stats.FlushInterval,
		ExportsDir:           cfg.Exports.Dir,
		ExportsMaxAge:        cfg.Exports.MaxAge,
		ExportsSweepInterval: cfg.Exports.SweepInterval,
	}
}

// Start registers the workers and their periodic jobs and starts the River
// client. Both periodic jobs also run once at startup, so a restart never
// waits a full interval before flushing or sweeping.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	collector *stats.Collector,
	strg storage.Storage,
	opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewStatsFlushWorker(collector, strg))
	river.AddWorker(workers, NewExportsSweepWorker(opts.ExportsDir, opts.ExportsMaxAge))

	periodicJobs := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(opts.StatsFlushInterval),
			func() (river.JobArgs, *river.InsertOpts) { return StatsFlushArgs{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
		river.NewPeriodicJob(
			river.PeriodicInterval(opts.ExportsSweepInterval),
			func() (river.JobArgs, *river.InsertOpts) { return ExportsSweepArgs{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
