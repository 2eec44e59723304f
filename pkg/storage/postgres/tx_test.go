package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countRouteRows(t *testing.T, db *sql.DB, route string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM api_request_stats WHERE route = $1`, route)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: upsert inside the tx, then commit
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	err = txStorage.UpsertEndpointStats(ctx, statFixture("/api/admin", "GET", 1, 0, time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, txStorage.Commit())

	// Verify persistence outside tx
	require.Equal(t, 1, countRouteRows(t, db, "/api/admin"))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: rollback should discard the upsert
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	err = txStorage.UpsertEndpointStats(ctx, statFixture("/api/news", "GET", 1, 0, time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	// Verify no persistence outside tx
	require.Equal(t, 0, countRouteRows(t, db, "/api/news"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		return s.UpsertEndpointStats(ctx, statFixture("/api/forms", "POST", 2, 0, time.Now().UTC())) //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRouteRows(t, db, "/api/forms"))

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if e := s.UpsertEndpointStats(ctx, statFixture("/api/users", "GET", 2, 0, time.Now().UTC())); e != nil {
			return e //nolint: wrapcheck
		}

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRouteRows(t, db, "/api/users"))
}
