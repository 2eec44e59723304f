// Package stats records per-endpoint API traffic. Every handled request is
// observed twice: into OpenTelemetry instruments exported through Prometheus
// for live dashboards, and into in-memory aggregates that a background job
// periodically flushes to the database.
package stats

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/AryanKharia/hybridreality-Vercel/pkg/domain"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// statKey identifies one aggregate row.
type statKey struct {
	route  string
	method string
}

// Collector owns the request instruments and the flushable aggregates. It is
// safe for concurrent use by all request handlers.
type Collector struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram

	mu  sync.Mutex
	agg map[statKey]domain.EndpointStat
}

// NewCollector wires the OpenTelemetry metric pipeline onto the given
// Prometheus registerer and creates the request instruments.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)).Meter("hybridreality/api")

	requests, err := meter.Int64Counter("api_requests_total",
		metric.WithDescription("Number of handled API requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("api_request_duration_seconds",
		metric.WithDescription("API request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Collector{
		requests: requests,
		duration: duration,
		agg:      map[statKey]domain.EndpointStat{},
	}, nil
}

// Observe records one handled request into the instruments and the
// aggregates.
func (c *Collector) Observe(ctx context.Context, route, method string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(metrics.KeyRoute, route),
		attribute.String(metrics.KeyMethod, method),
		attribute.String(metrics.KeyStatusClass, metrics.StatusClass(status)),
	)
	c.requests.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)

	stat := domain.EndpointStat{
		Route:         route,
		Method:        method,
		Hits:          1,
		TotalDuration: elapsed,
		LastSeen:      time.Now().UTC(),
	}
	if status >= http.StatusBadRequest {
		stat.Errors = 1
	}

	c.merge(stat)
}

// Drain removes and returns the accumulated aggregates, ordered by route and
// method. The caller persists the snapshot; Restore puts it back if that
// fails, so no counts are lost between the two.
func (c *Collector) Drain() []domain.EndpointStat {
	c.mu.Lock()
	agg := c.agg
	c.agg = make(map[statKey]domain.EndpointStat, len(agg))
	c.mu.Unlock()

	out := make([]domain.EndpointStat, 0, len(agg))
	for _, stat := range agg {
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Route != out[j].Route {
			return out[i].Route < out[j].Route
		}

		return out[i].Method < out[j].Method
	})

	return out
}

// Restore merges a drained snapshot back into the aggregates.
func (c *Collector) Restore(stats ...domain.EndpointStat) {
	for _, stat := range stats {
		c.merge(stat)
	}
}

func (c *Collector) merge(stat domain.EndpointStat) {
	key := statKey{route: stat.Route, method: stat.Method}

	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.agg[key]
	if !ok {
		cur = domain.EndpointStat{Route: stat.Route, Method: stat.Method}
	}
	cur.Merge(stat)
	c.agg[key] = cur
}
