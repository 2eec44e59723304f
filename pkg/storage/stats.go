package storage

import (
	"context"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/domain"
)

// StatsStorage persists per-endpoint API traffic aggregates. Rows are keyed
// by (route, method); writes are additive so concurrent flushers and process
// restarts never lose counts.
type StatsStorage interface {
	// UpsertEndpointStats merges the given aggregates into the persisted rows:
	// counters and durations are added, last_seen keeps the newest timestamp.
	// Passing no stats is a no-op.
	UpsertEndpointStats(ctx context.Context, stats ...domain.EndpointStat) error

	// EndpointStats returns all persisted aggregates ordered by hits descending
	// (route ascending on ties).
	EndpointStats(ctx context.Context) ([]domain.EndpointStat, error)
}
