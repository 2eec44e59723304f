package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/internal/exports"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExportsSweepWorker removes expired files from the exports working
// directory.
type ExportsSweepWorker struct {
	river.WorkerDefaults[ExportsSweepArgs]

	dir    string
	maxAge time.Duration
}

// NewExportsSweepWorker constructs an ExportsSweepWorker for the given
// directory and retention age.
func NewExportsSweepWorker(dir string, maxAge time.Duration) *ExportsSweepWorker {
	return &ExportsSweepWorker{
		dir:    dir,
		maxAge: maxAge,
	}
}

// Work runs one sweep.
func (w *ExportsSweepWorker) Work(ctx context.Context, job *river.Job[ExportsSweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	removed, err := exports.Sweep(ctx, w.dir, w.maxAge)
	if err != nil {
		return fmt.Errorf("could not sweep exports directory: %w", err)
	}

	if removed > 0 {
		logger.Info(ctx, "removed expired exports", zap.Int("removed", removed))
	}

	return nil
}
