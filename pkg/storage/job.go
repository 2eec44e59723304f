package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue backend. The stats API
// uses it to trigger an immediate flush ahead of the periodic schedule.
//
// The boolean result reports whether the job was actually inserted; false
// means a unique job with the same characteristics was already queued.
// Insertion is atomic with a surrounding transaction when the handle is
// transactional.
type JobStorage interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
