package football

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"football/pkg/domain"
)

// SyncJobArgs are the arguments of a competition snapshot sync. The
// competition ID is the unique key, so at most one sync per competition is
// queued at a time.
type SyncJobArgs struct {
	CompetitionID domain.CompetitionID `json:"competition_id" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// NewSyncJobArgs builds the job arguments for a competition.
func NewSyncJobArgs(id domain.CompetitionID, maxAttempts int, uniquePeriod time.Duration) SyncJobArgs {
	return SyncJobArgs{
		CompetitionID: id,
		maxAttempts:   maxAttempts,
		uniquePeriod:  uniquePeriod,
	}
}

// Kind returns the River job kind the sync worker is registered under.
func (args SyncJobArgs) Kind() string { return "SyncCompetitionJob" }

// InsertOpts deduplicates syncs of the same competition within the unique
// period, including ones that already completed.
func (args SyncJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
