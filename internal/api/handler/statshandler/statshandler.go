// Package statshandler exposes the persisted API request statistics.
package statshandler

import (
	"net/http"
	"time"

	"github.com/go-faster/jx"

	"github.com/AryanKharia/hybridreality-Vercel/internal/worker"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/domain"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/serrors"
	"github.com/AryanKharia/hybridreality-Vercel/pkg/storage"
)

// timeLayout matches the timestamp format of the rest of the API.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Handler implements the stats route module.
type Handler struct {
	storage storage.AllStorage
}

// New returns a Handler reading stats from and queueing flush jobs into strg.
func New(strg storage.AllStorage) *Handler {
	return &Handler{storage: strg}
}

// List responds with every persisted endpoint aggregate, busiest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	sts, err := h.storage.EndpointStats(r.Context())
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not load endpoint stats")
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("count", func(e *jx.Encoder) { e.Int(len(sts)) })
		e.Field("stats", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, st := range sts {
					encodeStat(e, st)
				}
			})
		})
	})

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(e.Bytes())

	return nil
}

// TriggerFlush queues an immediate flush of the in-memory aggregates.
// queued is false when a flush job is already waiting or running.
func (h *Handler) TriggerFlush(w http.ResponseWriter, r *http.Request) error {
	queued, err := h.storage.AddJob(r.Context(), worker.StatsFlushArgs{}, nil)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not queue stats flush")
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("success", func(e *jx.Encoder) { e.Bool(true) })
		e.Field("queued", func(e *jx.Encoder) { e.Bool(queued) })
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write(e.Bytes())

	return nil
}

func encodeStat(e *jx.Encoder, st domain.EndpointStat) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("route", func(e *jx.Encoder) { e.Str(st.Route) })
		e.Field("method", func(e *jx.Encoder) { e.Str(st.Method) })
		e.Field("hits", func(e *jx.Encoder) { e.Int64(st.Hits) })
		e.Field("errors", func(e *jx.Encoder) { e.Int64(st.Errors) })
		e.Field("avgDurationMs", func(e *jx.Encoder) {
			e.Float64(float64(st.AvgDuration()) / float64(time.Millisecond))
		})
		e.Field("lastSeen", func(e *jx.Encoder) { e.Str(st.LastSeen.UTC().Format(timeLayout)) })
	})
}
