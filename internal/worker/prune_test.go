package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"football/internal/worker"
	mockstorage "football/pkg/storage/mock"
)

func makePruneJob() *river.Job[worker.PruneJobArgs] {
	return &river.Job[worker.PruneJobArgs]{JobRow: &rivertype.JobRow{ID: 99}}
}

func TestPruneWorker_DeletesBeforeRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	w := worker.NewPruneWorker(strg, 24*time.Hour)

	start := time.Now()
	strg.EXPECT().DeleteSnapshotsBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, before time.Time) (int64, error) {
			age := start.Sub(before)
			require.InDelta(t, (24 * time.Hour).Seconds(), age.Seconds(), 5)

			return 3, nil
		})

	require.NoError(t, w.Work(context.Background(), makePruneJob()))
}

func TestPruneWorker_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	w := worker.NewPruneWorker(strg, time.Hour)

	strg.EXPECT().DeleteSnapshotsBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	require.Error(t, w.Work(context.Background(), makePruneJob()))
}

func TestPruneWorker_ZeroRetentionKeepsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewPruneWorker(mockstorage.NewMockStorage(ctrl), 0)

	require.NoError(t, w.Work(context.Background(), makePruneJob()))
}
