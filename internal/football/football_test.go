package football_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"football/internal/football"
	mockcache "football/pkg/cache/mock"
	"football/pkg/domain"
	"football/pkg/footballapi"
	mockfootballapi "football/pkg/footballapi/mock"
	"football/pkg/serrors"
	"football/pkg/storage"
	mockstorage "football/pkg/storage/mock"
)

const ttl = time.Minute

var rl = footballapi.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)} //nolint: gochecknoglobals

type deps struct {
	client  *mockfootballapi.MockClient
	cache   *mockcache.MockCache
	storage *mockstorage.MockStorage
}

func newTestService(t *testing.T, opts football.Options) (deps, football.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		client:  mockfootballapi.NewMockClient(ctrl),
		cache:   mockcache.NewMockCache(ctrl),
		storage: mockstorage.NewMockStorage(ctrl),
	}

	return d, football.New(d.client, d.cache, d.storage, opts)
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		op     string
		params url.Values
		want   string
	}{
		{"no params", "fixtures", nil, "fixtures"},
		{"empty values dropped", "fixtures", url.Values{"timeFrame": {""}, "league": {""}}, "fixtures"},
		{"sorted", "teams/5/fixtures", url.Values{"venue": {"home"}, "season": {"2017"}}, "teams/5/fixtures?season=2017&venue=home"},
		{"partially set", "fixtures", url.Values{"timeFrame": {"n7"}, "league": {""}}, "fixtures?timeFrame=n7"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, football.CacheKey(tc.op, tc.params))
		})
	}
}

func TestService_Competitions_CacheMissStoresResult(t *testing.T) {
	d, s := newTestService(t, football.Options{CacheTTL: ttl})
	ctx := context.Background()

	comps := []domain.Competition{{ID: 445, League: "PL", Caption: "Premier League 2017/18"}}
	d.cache.EXPECT().Get(gomock.Any(), "competitions?season=2017").Return(nil, false, nil)
	d.client.EXPECT().Competitions(gomock.Any(), domain.Season("2017")).Return(comps, rl, nil)
	d.cache.EXPECT().Set(gomock.Any(), "competitions?season=2017", gomock.Any(), ttl).
		DoAndReturn(func(_ context.Context, _ string, b []byte, _ time.Duration) error {
			require.Contains(t, string(b), `"league":"PL"`)

			return nil
		})

	out, err := s.Competitions(ctx, "2017")
	require.NoError(t, err)
	require.Equal(t, comps, out)
}

func TestService_Competitions_CacheHitSkipsUpstream(t *testing.T) {
	d, s := newTestService(t, football.Options{CacheTTL: ttl})

	d.cache.EXPECT().Get(gomock.Any(), "competitions").
		Return([]byte(`[{"id":452,"league":"BL1","caption":"1. Bundesliga"}]`), true, nil)

	out, err := s.Competitions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, domain.CompetitionID(452), out[0].ID)
}

func TestService_CacheFailuresDoNotFailRequests(t *testing.T) {
	d, s := newTestService(t, football.Options{CacheTTL: ttl})

	team := &domain.Team{ID: 5, Name: "FC Bayern München"}
	d.cache.EXPECT().Get(gomock.Any(), "teams/5").Return(nil, false, errors.New("redis down"))
	d.client.EXPECT().Team(gomock.Any(), domain.TeamID(5)).Return(team, rl, nil)
	d.cache.EXPECT().Set(gomock.Any(), "teams/5", gomock.Any(), ttl).Return(errors.New("redis down"))

	out, err := s.Team(context.Background(), "5")
	require.NoError(t, err)
	require.Equal(t, team, out)
}

func TestService_CorruptCacheEntryIsRefetched(t *testing.T) {
	d, s := newTestService(t, football.Options{CacheTTL: ttl})

	players := &domain.PlayerList{Count: 1, Players: []domain.Player{{Name: "Manuel Neuer"}}}
	d.cache.EXPECT().Get(gomock.Any(), "teams/5/players").Return([]byte(`{`), true, nil)
	d.client.EXPECT().Players(gomock.Any(), domain.TeamID(5)).Return(players, rl, nil)
	d.cache.EXPECT().Set(gomock.Any(), "teams/5/players", gomock.Any(), ttl).Return(nil)

	out, err := s.Players(context.Background(), "5")
	require.NoError(t, err)
	require.Equal(t, players, out)
}

func TestService_ZeroTTLBypassesCache(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	fixtures := &domain.FixtureList{Count: 0}
	d.client.EXPECT().
		Fixtures(gomock.Any(), footballapi.FixturesQuery{TimeFrame: "n7", League: "PL"}).
		Return(fixtures, rl, nil)

	out, err := s.Fixtures(context.Background(), "n7", "pl")
	require.NoError(t, err)
	require.Equal(t, fixtures, out)
}

func TestService_ValidationErrorsSkipUpstream(t *testing.T) {
	_, s := newTestService(t, football.Options{CacheTTL: ttl})
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"season", func() error { _, err := s.Competitions(ctx, "17"); return err }},
		{"competition", func() error { _, err := s.Teams(ctx, "XYZ"); return err }},
		{"matchday", func() error { _, err := s.Table(ctx, "PL", "0"); return err }},
		{"fixtures matchday", func() error { _, err := s.CompetitionFixtures(ctx, "PL", "x", ""); return err }},
		{"fixtures time frame", func() error { _, err := s.CompetitionFixtures(ctx, "PL", "", "x7"); return err }},
		{"time frame", func() error { _, err := s.Fixtures(ctx, "n0", ""); return err }},
		{"league", func() error { _, err := s.Fixtures(ctx, "", "XX"); return err }},
		{"fixture id", func() error { _, err := s.Fixture(ctx, "abc"); return err }},
		{"team id", func() error { _, err := s.Team(ctx, "-1"); return err }},
		{"players team id", func() error { _, err := s.Players(ctx, ""); return err }},
		{"team season", func() error { _, err := s.TeamFixtures(ctx, "5", "20171", "", ""); return err }},
		{"team venue", func() error { _, err := s.TeamFixtures(ctx, "5", "", "", "neutral"); return err }},
		{"overview team id", func() error { _, err := s.TeamOverview(ctx, "x"); return err }},
		{"sync competition", func() error { _, err := s.ScheduleSync(ctx, "nope"); return err }},
		{"snapshot kind", func() error { _, err := s.Snapshot(ctx, "PL", "players"); return err }},
		{"snapshots cursor", func() error { _, _, err := s.Snapshots(ctx, "PL", "yesterday", 10); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), serrors.ErrBadRequest)
		})
	}
}

func TestService_Table_ResolvesLeagueCode(t *testing.T) {
	d, s := newTestService(t, football.Options{CacheTTL: ttl})

	table := &domain.LeagueTable{LeagueCaption: "Primera Division 2017", Matchday: 3}
	d.cache.EXPECT().Get(gomock.Any(), "competitions/455/leagueTable?matchday=3").Return(nil, false, nil)
	d.client.EXPECT().Table(gomock.Any(), domain.CompetitionID(455), 3).Return(table, rl, nil)
	d.cache.EXPECT().Set(gomock.Any(), "competitions/455/leagueTable?matchday=3", gomock.Any(), ttl).Return(nil)

	out, err := s.Table(context.Background(), "pd", "3")
	require.NoError(t, err)
	require.Equal(t, table, out)
}

func TestService_UpstreamErrorKeepsKind(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	d.client.EXPECT().Fixture(gomock.Any(), domain.FixtureID(999)).
		Return(nil, rl, serrors.With(serrors.ErrNotFound, "fixture failed: not found"))

	_, err := s.Fixture(context.Background(), "999")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_TeamFixtures_PassesQuery(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	want := footballapi.TeamFixturesQuery{Season: "2017", TimeFrame: "p14", Venue: domain.VenueAway}
	d.client.EXPECT().TeamFixtures(gomock.Any(), domain.TeamID(66), want).Return(&domain.FixtureList{}, rl, nil)

	_, err := s.TeamFixtures(context.Background(), "66", "2017", "p14", "away")
	require.NoError(t, err)
}

func TestService_CompetitionFixtures_PassesQuery(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	want := footballapi.CompetitionFixturesQuery{Matchday: 12}
	d.client.EXPECT().CompetitionFixtures(gomock.Any(), domain.CompetitionID(464), want).
		Return(&domain.FixtureList{Count: 2}, rl, nil)

	out, err := s.CompetitionFixtures(context.Background(), "CL", "12", "")
	require.NoError(t, err)
	require.Equal(t, 2, out.Count)
}

func TestService_TeamOverview(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	d.client.EXPECT().Team(gomock.Any(), domain.TeamID(5)).
		Return(&domain.Team{ID: 5, Name: "FC Bayern München"}, rl, nil)
	d.client.EXPECT().Players(gomock.Any(), domain.TeamID(5)).
		Return(&domain.PlayerList{Count: 1, Players: []domain.Player{{Name: "Thomas Müller"}}}, rl, nil)
	d.client.EXPECT().TeamFixtures(gomock.Any(), domain.TeamID(5), footballapi.TeamFixturesQuery{}).
		Return(&domain.FixtureList{Count: 1, Fixtures: []domain.Fixture{{ID: 1}}}, rl, nil)

	out, err := s.TeamOverview(context.Background(), "5")
	require.NoError(t, err)
	require.Equal(t, "FC Bayern München", out.Team.Name)
	require.Len(t, out.Players, 1)
	require.Len(t, out.Fixtures, 1)
}

func TestService_TeamOverview_EmptyLists(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	d.client.EXPECT().Team(gomock.Any(), domain.TeamID(5)).Return(&domain.Team{ID: 5}, rl, nil)
	d.client.EXPECT().Players(gomock.Any(), domain.TeamID(5)).Return(&domain.PlayerList{}, rl, nil)
	d.client.EXPECT().TeamFixtures(gomock.Any(), domain.TeamID(5), gomock.Any()).Return(&domain.FixtureList{}, rl, nil)

	out, err := s.TeamOverview(context.Background(), "5")
	require.NoError(t, err)
	require.NotNil(t, out.Players)
	require.NotNil(t, out.Fixtures)
}

func TestService_TeamOverview_FirstErrorWins(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	d.client.EXPECT().Team(gomock.Any(), domain.TeamID(5)).
		Return(nil, rl, serrors.With(serrors.ErrRateLimited, "team failed: slow down"))
	d.client.EXPECT().Players(gomock.Any(), domain.TeamID(5)).
		DoAndReturn(func(ctx context.Context, _ domain.TeamID) (*domain.PlayerList, footballapi.RateLimitStatus, error) {
			<-ctx.Done()

			return nil, footballapi.RateLimitStatus{}, ctx.Err()
		}).AnyTimes()
	d.client.EXPECT().TeamFixtures(gomock.Any(), domain.TeamID(5), gomock.Any()).
		DoAndReturn(func(ctx context.Context,
			_ domain.TeamID,
			_ footballapi.TeamFixturesQuery) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
			<-ctx.Done()

			return nil, footballapi.RateLimitStatus{}, ctx.Err()
		}).AnyTimes()

	_, err := s.TeamOverview(context.Background(), "5")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestService_ScheduleSync(t *testing.T) {
	d, s := newTestService(t, football.Options{SyncMaxAttempts: 3, SyncUniquePeriod: time.Hour})

	d.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(football.SyncJobArgs)
			require.True(t, ok)
			require.Equal(t, domain.CompetitionID(452), job.CompetitionID)
			opts := job.InsertOpts()
			require.Equal(t, 3, opts.MaxAttempts)
			require.True(t, opts.UniqueOpts.ByArgs)
			require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)

			return true, nil
		})
	d.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)

	added, err := s.ScheduleSync(context.Background(), "BL1")
	require.NoError(t, err)
	require.True(t, added)

	added, err = s.ScheduleSync(context.Background(), "452")
	require.NoError(t, err)
	require.False(t, added)
}

func TestService_ScheduleSync_StorageError(t *testing.T) {
	d, s := newTestService(t, football.Options{})

	d.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db down"))

	_, err := s.ScheduleSync(context.Background(), "PL")
	require.Error(t, err)
}

func TestService_WithoutStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := football.New(mockfootballapi.NewMockClient(ctrl), nil, nil, football.Options{})
	ctx := context.Background()

	_, err := s.ScheduleSync(ctx, "PL")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	_, err = s.Snapshot(ctx, "PL", "table")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	_, _, err = s.Snapshots(ctx, "PL", "", 10)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_Snapshot(t *testing.T) {
	d, s := newTestService(t, football.Options{})
	ctx := context.Background()

	snap := &domain.Snapshot{CompetitionID: 445, Kind: domain.SnapshotKindTable, Payload: []byte(`{}`)}
	d.storage.EXPECT().LatestSnapshot(gomock.Any(), domain.CompetitionID(445), domain.SnapshotKindTable).Return(snap, nil)
	d.storage.EXPECT().LatestSnapshot(gomock.Any(), domain.CompetitionID(445), domain.SnapshotKindTeams).Return(nil, nil)

	out, err := s.Snapshot(ctx, "PL", "table")
	require.NoError(t, err)
	require.Equal(t, snap, out)

	_, err = s.Snapshot(ctx, "PL", "teams")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Snapshots_Cursor(t *testing.T) {
	d, s := newTestService(t, football.Options{})
	ctx := context.Background()

	first := &storage.SnapshotCursor{
		FetchedAt: time.Date(2018, 1, 2, 3, 4, 5, 600, time.UTC),
		ID:        domain.SnapshotID(uuid.MustParse("3f1c0e2a-8d5b-4c61-9a0e-7b2f4d6c8e10")),
	}
	next := &storage.SnapshotCursor{
		FetchedAt: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		ID:        domain.SnapshotID(uuid.MustParse("00000000-0000-0000-0000-0000000000aa")),
	}
	d.storage.EXPECT().Snapshots(gomock.Any(), domain.CompetitionID(456), first, uint(2)).
		Return(storage.SnapshotPage{
			Snapshots:  []domain.Snapshot{{Season: "2017"}, {Season: "2016"}},
			NextCursor: next,
		}, nil)
	d.storage.EXPECT().Snapshots(gomock.Any(), domain.CompetitionID(456), next, uint(2)).
		Return(storage.SnapshotPage{Snapshots: []domain.Snapshot{{Season: "2015"}}}, nil)

	page, nextCursor, err := s.Snapshots(ctx,
		"SA", "2018-01-02T03:04:05.0000006Z_3f1c0e2a-8d5b-4c61-9a0e-7b2f4d6c8e10", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "2018-01-01T00:00:00Z_00000000-0000-0000-0000-0000000000aa", nextCursor)

	page, nextCursor, err = s.Snapshots(ctx, "SA", nextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Empty(t, nextCursor)
}

func TestService_Snapshots_InvalidCursor(t *testing.T) {
	_, s := newTestService(t, football.Options{})

	for _, cursor := range []string{
		"2018-01-01T00:00:00Z",
		"yesterday_00000000-0000-0000-0000-0000000000aa",
		"2018-01-01T00:00:00Z_not-a-uuid",
	} {
		t.Run(cursor, func(t *testing.T) {
			_, _, err := s.Snapshots(context.Background(), "SA", cursor, 2)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}
