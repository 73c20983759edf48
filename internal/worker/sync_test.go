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

	"football/internal/football"
	"football/internal/worker"
	"football/pkg/domain"
	"football/pkg/footballapi"
	mockfootballapi "football/pkg/footballapi/mock"
	"football/pkg/serrors"
	"football/pkg/storage"
	mockstorage "football/pkg/storage/mock"
)

func makeSyncJob(id int64, competition domain.CompetitionID) *river.Job[football.SyncJobArgs] {
	return &river.Job[football.SyncJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   football.NewSyncJobArgs(competition, 3, time.Hour),
	}
}

func okStatus() footballapi.RateLimitStatus {
	return footballapi.RateLimitStatus{Limit: 50, Remaining: 40, ResetAt: time.Now().Add(time.Minute)}
}

type syncFixture struct {
	client  *mockfootballapi.MockClient
	storage *mockstorage.MockStorage
	ctrl    *gomock.Controller
	worker  *worker.SyncWorker
}

func newSyncFixture(t *testing.T) syncFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := syncFixture{
		client:  mockfootballapi.NewMockClient(ctrl),
		storage: mockstorage.NewMockStorage(ctrl),
		ctrl:    ctrl,
	}
	f.worker = worker.NewSyncWorker(f.client, f.storage, worker.NewRateLimiter())

	return f
}

// expectStore wires WithTx to a transactional mock and returns the kinds stored.
func (f syncFixture) expectStore(t *testing.T) *[]domain.Snapshot {
	t.Helper()

	var stored []domain.Snapshot
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().StoreSnapshot(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s domain.Snapshot) (*domain.Snapshot, error) {
					stored = append(stored, s)

					return &s, nil
				}).AnyTimes()

			return cb(tx)
		})

	return &stored
}

func TestSyncWorker_Work_StoresAllKinds(t *testing.T) {
	f := newSyncFixture(t)

	f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(445), footballapi.CompetitionFixturesQuery{}).
		Return(&domain.FixtureList{Season: "2017", Count: 1, Fixtures: []domain.Fixture{{ID: 1}}}, okStatus(), nil)
	f.client.EXPECT().Table(gomock.Any(), domain.CompetitionID(445), 0).
		Return(&domain.LeagueTable{LeagueCaption: "Premier League 2017/18"}, okStatus(), nil)
	f.client.EXPECT().Teams(gomock.Any(), domain.CompetitionID(445)).
		Return(&domain.TeamList{Count: 20}, okStatus(), nil)
	stored := f.expectStore(t)

	require.NoError(t, f.worker.Work(context.Background(), makeSyncJob(1, 445)))

	require.Len(t, *stored, 3)
	kinds := make([]domain.SnapshotKind, 0, 3)
	for _, s := range *stored {
		require.Equal(t, domain.CompetitionID(445), s.CompetitionID)
		require.Equal(t, "2017", s.Season)
		require.False(t, s.FetchedAt.IsZero())
		kinds = append(kinds, s.Kind)
	}
	require.ElementsMatch(t,
		[]domain.SnapshotKind{domain.SnapshotKindFixtures, domain.SnapshotKindTable, domain.SnapshotKindTeams},
		kinds)
	require.JSONEq(t, `{"leagueCaption":"Premier League 2017/18","matchday":0}`, string((*stored)[1].Payload))
}

func TestSyncWorker_Work_CupSkipsTable(t *testing.T) {
	f := newSyncFixture(t)

	f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(464), gomock.Any()).
		Return(&domain.FixtureList{Season: "2017"}, okStatus(), nil)
	f.client.EXPECT().Teams(gomock.Any(), domain.CompetitionID(464)).
		Return(&domain.TeamList{Count: 32}, okStatus(), nil)
	stored := f.expectStore(t)

	require.NoError(t, f.worker.Work(context.Background(), makeSyncJob(2, 464)))
	require.Len(t, *stored, 2)
}

func TestSyncWorker_Work_MissingTableIsSkipped(t *testing.T) {
	f := newSyncFixture(t)

	f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(999), gomock.Any()).
		Return(&domain.FixtureList{Season: "2017"}, okStatus(), nil)
	f.client.EXPECT().Table(gomock.Any(), domain.CompetitionID(999), 0).
		Return(nil, okStatus(), serrors.With(serrors.ErrNotFound, "table failed: not found"))
	f.client.EXPECT().Teams(gomock.Any(), domain.CompetitionID(999)).
		Return(&domain.TeamList{}, okStatus(), nil)
	stored := f.expectStore(t)

	require.NoError(t, f.worker.Work(context.Background(), makeSyncJob(3, 999)))
	require.Len(t, *stored, 2)
	for _, s := range *stored {
		require.NotEqual(t, domain.SnapshotKindTable, s.Kind)
	}
}

func TestSyncWorker_Work_SeasonOfCompetition(t *testing.T) {
	march := time.Date(2018, 3, 1, 15, 0, 0, 0, time.UTC)
	august := time.Date(2017, 8, 11, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name         string
		competitions []domain.Competition
		want         string
	}{
		{"listed competition", []domain.Competition{{ID: 444, Year: "2018"}, {ID: 445, Year: "2016"}}, "2016"},
		{"earliest fixture", []domain.Competition{{ID: 444, Year: "2018"}}, "2017"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)

			f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(445), gomock.Any()).
				Return(&domain.FixtureList{Count: 2, Fixtures: []domain.Fixture{{ID: 2, Date: march}, {ID: 1, Date: august}}},
					okStatus(), nil)
			f.client.EXPECT().Competitions(gomock.Any(), domain.Season("")).Return(tt.competitions, okStatus(), nil)
			f.client.EXPECT().Table(gomock.Any(), domain.CompetitionID(445), 0).Return(&domain.LeagueTable{}, okStatus(), nil)
			f.client.EXPECT().Teams(gomock.Any(), domain.CompetitionID(445)).Return(&domain.TeamList{}, okStatus(), nil)
			stored := f.expectStore(t)

			require.NoError(t, f.worker.Work(context.Background(), makeSyncJob(9, 445)))
			require.Len(t, *stored, 3)
			for _, s := range *stored {
				require.Equal(t, tt.want, s.Season, "season of %s", s.Kind)
			}
		})
	}
}

func TestSyncWorker_Work_UnknownCompetitionCancels(t *testing.T) {
	f := newSyncFixture(t)

	f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(1), gomock.Any()).
		Return(nil, okStatus(), serrors.With(serrors.ErrNotFound, "competition_fixtures failed: not found"))

	err := f.worker.Work(context.Background(), makeSyncJob(4, 1))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestSyncWorker_Work_RateLimitedSnoozes(t *testing.T) {
	f := newSyncFixture(t)

	resetAt := time.Now().Add(1500 * time.Millisecond)
	f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(452), gomock.Any()).
		Return(nil,
			footballapi.RateLimitStatus{Limit: 10, Remaining: 0, ResetAt: resetAt},
			serrors.With(serrors.ErrRateLimited, "competition_fixtures failed: too many requests"))

	err := f.worker.Work(context.Background(), makeSyncJob(5, 452))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestSyncWorker_Work_GenericErrorRetries(t *testing.T) {
	f := newSyncFixture(t)

	f.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(445), gomock.Any()).
		Return(&domain.FixtureList{Season: "2017"}, okStatus(), nil)
	f.client.EXPECT().Table(gomock.Any(), domain.CompetitionID(445), 0).
		Return(nil, footballapi.RateLimitStatus{}, serrors.With(serrors.ErrUnavailable, "could not send request"))

	err := f.worker.Work(context.Background(), makeSyncJob(6, 445))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestSyncWorker_Work_StorageErrorRetries(t *testing.T) {
	f := newSyncFixture(t)

	f.client.EXPECT().CompetitionFixtures(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.FixtureList{Season: "2017"}, okStatus(), nil)
	f.client.EXPECT().Table(gomock.Any(), gomock.Any(), 0).Return(&domain.LeagueTable{}, okStatus(), nil)
	f.client.EXPECT().Teams(gomock.Any(), gomock.Any()).Return(&domain.TeamList{}, okStatus(), nil)
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := f.worker.Work(context.Background(), makeSyncJob(7, 445))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestSyncWorker_SharedLimiterSerializesProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockfootballapi.NewMockClient(ctrl)
	strg := mockstorage.NewMockStorage(ctrl)
	limiter := worker.NewRateLimiter()
	w := worker.NewSyncWorker(client, strg, limiter)

	firstStarted := make(chan struct{})
	allowFirst := make(chan struct{})

	// the first call of the process is the probe, a concurrent job must wait for it
	client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(445), gomock.Any()).
		DoAndReturn(func(context.Context,
			domain.CompetitionID,
			footballapi.CompetitionFixturesQuery) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
			close(firstStarted)
			<-allowFirst

			return nil, okStatus(), serrors.With(serrors.ErrNotFound, "gone")
		})

	done := make(chan error, 1)
	go func() { done <- w.Work(context.Background(), makeSyncJob(8, 445)) }()
	<-firstStarted

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.Error(t, limiter.Reserve(ctx), "probe must hold the only slot")

	close(allowFirst)
	require.Error(t, <-done)

	_, inFlight := limiter.Status()
	require.Zero(t, inFlight)
}
