package worker

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// activeStates are the job states checked for uniqueness: one queued flush or
// sweep at a time, while completed runs never block a new one.
var activeStates = []rivertype.JobState{ //nolint: gochecknoglobals
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// StatsFlushArgs enqueues a flush of the in-memory request statistics into
// the database. Besides the periodic schedule, the stats API inserts one to
// trigger an immediate flush.
type StatsFlushArgs struct{}

// Kind returns the River job kind used to register and dispatch the stats flush worker.
func (StatsFlushArgs) Kind() string { return "StatsFlushJob" }

// InsertOpts enforces a single queued flush job at a time. An extra insert
// while one is pending reports a duplicate instead of piling up.
func (StatsFlushArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeStates,
		},
	}
}

// ExportsSweepArgs enqueues a sweep of expired files in the exports working
// directory.
type ExportsSweepArgs struct{}

// Kind returns the River job kind used to register and dispatch the exports sweep worker.
func (ExportsSweepArgs) Kind() string { return "ExportsSweepJob" }

// InsertOpts enforces a single queued sweep job at a time.
func (ExportsSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: activeStates,
		},
	}
}
