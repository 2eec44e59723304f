package postgres

import (
	"database/sql"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/domain"
)

// PgEndpointStat mirrors one row of the api_request_stats table. Durations
// are stored as milliseconds so dashboards can query them without casting.
type PgEndpointStat struct {
	Route  string `db:"route"`
	Method string `db:"method"`

	Hits            int64   `db:"hits"`
	Errors          int64   `db:"errors"`
	TotalDurationMS float64 `db:"total_duration_ms"`

	LastSeen  time.Time    `db:"last_seen"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgEndpointStat) ToDomain() domain.EndpointStat {
	return domain.EndpointStat{
		Route:         p.Route,
		Method:        p.Method,
		Hits:          p.Hits,
		Errors:        p.Errors,
		TotalDuration: time.Duration(p.TotalDurationMS * float64(time.Millisecond)),
		LastSeen:      p.LastSeen,
	}
}

func (p *PgEndpointStat) FromDomain(stat domain.EndpointStat) {
	*p = PgEndpointStat{
		Route:           stat.Route,
		Method:          stat.Method,
		Hits:            stat.Hits,
		Errors:          stat.Errors,
		TotalDurationMS: float64(stat.TotalDuration) / float64(time.Millisecond),
		LastSeen:        stat.LastSeen,
	}
}

func domainStatsToPg(stats []domain.EndpointStat) []PgEndpointStat {
	out := make([]PgEndpointStat, len(stats))
	for i := range out {
		out[i].FromDomain(stats[i])
	}

	return out
}

func pgStatsToDomain(stats []PgEndpointStat) []domain.EndpointStat {
	out := make([]domain.EndpointStat, 0, len(stats))
	for i := range stats {
		out = append(out, stats[i].ToDomain())
	}

	return out
}
