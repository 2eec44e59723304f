package exports_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/internal/exports"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")

	require.NoError(t, exports.EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent on an existing directory.
	require.NoError(t, exports.EnsureDir(dir))
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	old := time.Now().Add(-48 * time.Hour)

	writeExport := func(name string, modTime time.Time) {
		full := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(full, []byte("export"), 0o644))
		if !modTime.IsZero() {
			require.NoError(t, os.Chtimes(full, modTime, modTime))
		}
	}

	writeExport("stale.csv", old)
	writeExport("fresh.csv", time.Time{})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keepdir"), 0o755))

	removed, err := exports.Sweep(context.Background(), dir, 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(dir, "stale.csv"))
	require.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "fresh.csv"))
	require.NoError(t, err)

	// Subdirectories are preserved regardless of age.
	_, err = os.Stat(filepath.Join(dir, "keepdir"))
	require.NoError(t, err)
}

func TestSweep_MissingDir(t *testing.T) {
	_, err := exports.Sweep(context.Background(), filepath.Join(t.TempDir(), "nope"), time.Hour)
	require.Error(t, err)
}
