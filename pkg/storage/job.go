package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same backend that holds the
// snapshots, so an insert can take part in a surrounding transaction.
type JobStorage interface {
	// AddJob enqueues a job. It reports false when the queue skipped the
	// insert because a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
