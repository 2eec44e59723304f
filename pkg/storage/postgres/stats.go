package postgres

import (
	"context"
	"fmt"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/domain"
	"github.com/doug-martin/goqu/v9"
)

const (
	statsTable = "api_request_stats"
)

// UpsertEndpointStats merges traffic aggregates into api_request_stats.
// Counters and durations are additive so periodic flushes from multiple
// processes never clobber each other; last_seen keeps the newest timestamp.
func (p *PgSQL) UpsertEndpointStats(ctx context.Context, stats ...domain.EndpointStat) error {
	if len(stats) == 0 {
		return nil
	}

	rows := domainStatsToPg(stats)

	_, err := p.Builder.Insert(statsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("route, method", goqu.Record{
			"hits":              goqu.L("api_request_stats.hits + EXCLUDED.hits"),
			"errors":            goqu.L("api_request_stats.errors + EXCLUDED.errors"),
			"total_duration_ms": goqu.L("api_request_stats.total_duration_ms + EXCLUDED.total_duration_ms"),
			"last_seen":         goqu.L("GREATEST(api_request_stats.last_seen, EXCLUDED.last_seen)"),
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not upsert endpoint stats into pg: %w", err)
	}

	return nil
}

// EndpointStats returns all persisted aggregates, busiest endpoints first.
func (p *PgSQL) EndpointStats(ctx context.Context) ([]domain.EndpointStat, error) {
	var rows []PgEndpointStat
	if err := p.Builder.From(statsTable).
		Order(goqu.I("hits").Desc(), goqu.I("route").Asc(), goqu.I("method").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch endpoint stats from pg: %w", err)
	}

	return pgStatsToDomain(rows), nil
}
