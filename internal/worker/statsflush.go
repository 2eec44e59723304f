package worker

import (
	"context"
	"fmt"

	"github.com/AryanKharia/hybridreality-Vercel/internal/stats"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// StatsFlushWorker drains the collector's in-memory request aggregates and
// merges them into the api_request_stats table. Because the upsert is
// additive and the drained snapshot is restored on failure, no counts are
// lost across failed flushes or process restarts.
type StatsFlushWorker struct {
	river.WorkerDefaults[StatsFlushArgs]

	collector *stats.Collector
	storage   storage.Storage
}

// NewStatsFlushWorker constructs a StatsFlushWorker flushing collector into
// storage.
func NewStatsFlushWorker(collector *stats.Collector, storage storage.Storage) *StatsFlushWorker {
	return &StatsFlushWorker{
		collector: collector,
		storage:   storage,
	}
}

// Work persists one drained snapshot. An empty snapshot is a no-op so idle
// periods do not touch the database.
func (w *StatsFlushWorker) Work(ctx context.Context, job *river.Job[StatsFlushArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	drained := w.collector.Drain()
	if len(drained) == 0 {
		logger.Debug(ctx, "no request stats to flush")

		return nil
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		return tx.UpsertEndpointStats(ctx, drained...) //nolint: wrapcheck
	}); err != nil {
		// Put the snapshot back so the next flush carries these counts.
		w.collector.Restore(drained...)

		return fmt.Errorf("could not flush request stats: %w", err)
	}

	logger.Info(ctx, "flushed request stats", zap.Int("endpoints", len(drained)))

	return nil
}
