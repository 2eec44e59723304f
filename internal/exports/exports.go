// Package exports manages the temporary working directory that export
// features write into: it is created at startup and expired files are swept
// by a background job.
package exports

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/logger"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// EnsureDir creates dir, including parents, when absent. The server treats a
// failure here as fatal because export handlers assume the directory exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "could not create exports directory")
	}

	return nil
}

// Sweep removes regular files in dir whose modification time is older than
// maxAge and returns how many were removed. Subdirectories are left alone.
// Files that cannot be removed are logged and skipped, they get another
// chance on the next sweep.
func Sweep(ctx context.Context, dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrap(err, "could not read exports directory")
	}

	cutoff := time.Now().Add(-maxAge)

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished mid sweep.
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			logger.Warn(ctx, "could not remove expired export",
				zap.String("file", entry.Name()),
				zap.Error(err))

			continue
		}
		removed++
	}

	return removed, nil
}
