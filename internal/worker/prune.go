package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"football/pkg/logger"
	"football/pkg/storage"
)

// PruneJobArgs triggers removal of snapshots older than the retention period.
type PruneJobArgs struct{}

// Kind returns the River job kind of the prune worker.
func (PruneJobArgs) Kind() string { return "PruneSnapshotsJob" }

// InsertOpts makes sure only one prune job is waiting at a time.
func (PruneJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts:  river.UniqueOpts{ByArgs: true, ByPeriod: time.Hour},
	}
}

// PruneWorker deletes snapshots fetched more than retention ago.
type PruneWorker struct {
	river.WorkerDefaults[PruneJobArgs]

	storage   storage.SnapshotStorage
	retention time.Duration
	now       func() time.Time
}

// NewPruneWorker constructs a PruneWorker. A non-positive retention keeps
// snapshots forever.
func NewPruneWorker(strg storage.SnapshotStorage, retention time.Duration) *PruneWorker {
	return &PruneWorker{
		storage:   strg,
		retention: retention,
		now:       time.Now,
	}
}

func (w *PruneWorker) Work(ctx context.Context, job *river.Job[PruneJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	if w.retention <= 0 {
		return nil
	}

	before := w.now().Add(-w.retention).UTC()
	n, err := w.storage.DeleteSnapshotsBefore(ctx, before)
	if err != nil {
		logger.Error(ctx, "error in pruning snapshots", zap.Error(err))

		return fmt.Errorf("could not prune snapshots: %w", err)
	}

	logger.Info(ctx, "snapshots pruned", zap.Int64("deleted", n), zap.Time("before", before))

	return nil
}
