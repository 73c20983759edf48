package football

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"football/internal/config"
	"football/pkg/cache"
	"football/pkg/domain"
	"football/pkg/footballapi"
	"football/pkg/logger"
	"football/pkg/metrics"
	"football/pkg/serrors"
	"football/pkg/storage"
)

// Options configure caching and how sync jobs are enqueued.
type Options struct {
	// CacheTTL is how long upstream responses are cached. Zero disables the cache.
	CacheTTL time.Duration
	// SyncMaxAttempts is the maximum number of attempts of a sync job.
	SyncMaxAttempts int
	// SyncUniquePeriod is the window in which repeated syncs of the same
	// competition are deduplicated.
	SyncUniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CacheTTL:         cfg.Cache.TTL,
		SyncMaxAttempts:  cfg.Sync.MaxAttempts,
		SyncUniquePeriod: cfg.Sync.UniquePeriod,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	client  footballapi.Client
	cache   cache.Cache
	// storage is nil when the service runs without a database, e.g. from the
	// CLI query commands. Sync and snapshot operations are unavailable then.
	storage storage.Storage
}

// New creates a Service. c may be nil to disable caching and strg may be nil
// when no database is available.
func New(client footballapi.Client, c cache.Cache, strg storage.Storage, options Options) Service {
	if c == nil {
		c = cache.Noop{}
	}

	return &service{
		options: options,
		client:  client,
		cache:   c,
		storage: strg,
	}
}

type fetchFunc[T any] func(ctx context.Context) (T, footballapi.RateLimitStatus, error)

// readThrough answers from the cache when possible and otherwise calls fetch
// and caches its JSON encoding. Cache failures are logged and never returned.
func readThrough[T any](ctx context.Context, s *service, key string, fetch fetchFunc[T]) (T, error) {
	ctx = logger.WithFields(ctx, zap.String("cacheKey", key))

	if s.options.CacheTTL > 0 {
		b, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			logger.Warn(ctx, "could not read from cache", zap.Error(err))
		case found:
			var out T
			if err := json.Unmarshal(b, &out); err == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()

				return out, nil
			}
			metrics.CacheLookups.WithLabelValues("error").Inc()
			logger.Warn(ctx, "could not decode cached value, refetching", zap.Error(err))
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	out, rl, err := fetch(ctx)
	if rl.Known() {
		logger.Debug(ctx, "upstream rate limit",
			zap.Int("remaining", rl.Remaining),
			zap.Int("limit", rl.Limit),
			zap.Time("resetAt", rl.ResetAt))
	}
	if err != nil {
		var zero T

		return zero, err
	}

	if s.options.CacheTTL > 0 {
		b, err := json.Marshal(out)
		if err != nil {
			logger.Warn(ctx, "could not encode value for cache", zap.Error(err))

			return out, nil
		}
		if err := s.cache.Set(ctx, key, b, s.options.CacheTTL); err != nil {
			logger.Warn(ctx, "could not write to cache", zap.Error(err))
		}
	}

	return out, nil
}

func (s *service) Competitions(ctx context.Context, season string) ([]domain.Competition, error) {
	sn, err := domain.ParseSeason(season)
	if err != nil {
		return nil, err
	}

	key := CacheKey("competitions", url.Values{"season": {string(sn)}})

	out, err := readThrough(ctx, s, key,
		func(ctx context.Context) ([]domain.Competition, footballapi.RateLimitStatus, error) {
			return s.client.Competitions(ctx, sn)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get competitions: %w", err)
	}

	return out, nil
}

func (s *service) Teams(ctx context.Context, competition string) (*domain.TeamList, error) {
	id, err := domain.ResolveCompetition(competition)
	if err != nil {
		return nil, err
	}

	out, err := readThrough(ctx, s, CacheKey("competitions/"+id.String()+"/teams", nil),
		func(ctx context.Context) (*domain.TeamList, footballapi.RateLimitStatus, error) {
			return s.client.Teams(ctx, id)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get teams of competition %s: %w", id, err)
	}

	return out, nil
}

func (s *service) Table(ctx context.Context, competition, matchday string) (*domain.LeagueTable, error) {
	id, err := domain.ResolveCompetition(competition)
	if err != nil {
		return nil, err
	}
	md, err := domain.ParseMatchday(matchday)
	if err != nil {
		return nil, err
	}

	key := CacheKey("competitions/"+id.String()+"/leagueTable", url.Values{"matchday": {formatMatchday(md)}})

	out, err := readThrough(ctx, s, key,
		func(ctx context.Context) (*domain.LeagueTable, footballapi.RateLimitStatus, error) {
			return s.client.Table(ctx, id, md)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get table of competition %s: %w", id, err)
	}

	return out, nil
}

func (s *service) CompetitionFixtures(ctx context.Context,
	competition, matchday, timeFrame string) (*domain.FixtureList, error) {
	id, err := domain.ResolveCompetition(competition)
	if err != nil {
		return nil, err
	}
	md, err := domain.ParseMatchday(matchday)
	if err != nil {
		return nil, err
	}
	tf, err := domain.ParseTimeFrame(timeFrame)
	if err != nil {
		return nil, err
	}
	q := footballapi.CompetitionFixturesQuery{Matchday: md, TimeFrame: tf}

	out, err := readThrough(ctx, s, CacheKey("competitions/"+id.String()+"/fixtures", q.Values()),
		func(ctx context.Context) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
			return s.client.CompetitionFixtures(ctx, id, q)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get fixtures of competition %s: %w", id, err)
	}

	return out, nil
}

func (s *service) Fixtures(ctx context.Context, timeFrame, league string) (*domain.FixtureList, error) {
	tf, err := domain.ParseTimeFrame(timeFrame)
	if err != nil {
		return nil, err
	}
	lc, err := domain.ParseLeagueFilter(league)
	if err != nil {
		return nil, err
	}
	q := footballapi.FixturesQuery{TimeFrame: tf, League: lc}

	out, err := readThrough(ctx, s, CacheKey("fixtures", q.Values()),
		func(ctx context.Context) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
			return s.client.Fixtures(ctx, q)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get fixtures: %w", err)
	}

	return out, nil
}

func (s *service) Fixture(ctx context.Context, fixture string) (*domain.FixtureDetails, error) {
	id, err := domain.ParseFixtureID(fixture)
	if err != nil {
		return nil, err
	}

	out, err := readThrough(ctx, s, CacheKey("fixtures/"+id.String(), nil),
		func(ctx context.Context) (*domain.FixtureDetails, footballapi.RateLimitStatus, error) {
			return s.client.Fixture(ctx, id)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get fixture %s: %w", id, err)
	}

	return out, nil
}

func (s *service) Team(ctx context.Context, team string) (*domain.Team, error) {
	id, err := domain.ParseTeamID(team)
	if err != nil {
		return nil, err
	}

	out, err := readThrough(ctx, s, CacheKey("teams/"+id.String(), nil),
		func(ctx context.Context) (*domain.Team, footballapi.RateLimitStatus, error) {
			return s.client.Team(ctx, id)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get team %s: %w", id, err)
	}

	return out, nil
}

func (s *service) Players(ctx context.Context, team string) (*domain.PlayerList, error) {
	id, err := domain.ParseTeamID(team)
	if err != nil {
		return nil, err
	}

	out, err := readThrough(ctx, s, CacheKey("teams/"+id.String()+"/players", nil),
		func(ctx context.Context) (*domain.PlayerList, footballapi.RateLimitStatus, error) {
			return s.client.Players(ctx, id)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get players of team %s: %w", id, err)
	}

	return out, nil
}

func (s *service) TeamFixtures(ctx context.Context,
	team, season, timeFrame, venue string) (*domain.FixtureList, error) {
	id, err := domain.ParseTeamID(team)
	if err != nil {
		return nil, err
	}
	sn, err := domain.ParseSeason(season)
	if err != nil {
		return nil, err
	}
	tf, err := domain.ParseTimeFrame(timeFrame)
	if err != nil {
		return nil, err
	}
	v, err := domain.ParseVenue(venue)
	if err != nil {
		return nil, err
	}
	q := footballapi.TeamFixturesQuery{Season: sn, TimeFrame: tf, Venue: v}

	out, err := readThrough(ctx, s, CacheKey("teams/"+id.String()+"/fixtures", q.Values()),
		func(ctx context.Context) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
			return s.client.TeamFixtures(ctx, id, q)
		})
	if err != nil {
		return nil, fmt.Errorf("could not get fixtures of team %s: %w", id, err)
	}

	return out, nil
}

// TeamOverview runs the team, players and fixtures lookups concurrently. The
// first failure cancels the others.
func (s *service) TeamOverview(ctx context.Context, team string) (*domain.TeamOverview, error) {
	if _, err := domain.ParseTeamID(team); err != nil {
		return nil, err
	}

	var (
		t        *domain.Team
		players  *domain.PlayerList
		fixtures *domain.FixtureList
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		t, err = s.Team(gctx, team)

		return err
	})
	g.Go(func() (err error) {
		players, err = s.Players(gctx, team)

		return err
	})
	g.Go(func() (err error) {
		fixtures, err = s.TeamFixtures(gctx, team, "", "", "")

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not get team overview: %w", err)
	}

	out := &domain.TeamOverview{
		Team:     *t,
		Players:  []domain.Player{},
		Fixtures: []domain.Fixture{},
	}
	if players != nil && players.Players != nil {
		out.Players = players.Players
	}
	if fixtures != nil && fixtures.Fixtures != nil {
		out.Fixtures = fixtures.Fixtures
	}

	return out, nil
}

func (s *service) ScheduleSync(ctx context.Context, competition string) (bool, error) {
	id, err := domain.ResolveCompetition(competition)
	if err != nil {
		return false, err
	}
	if s.storage == nil {
		return false, serrors.With(serrors.ErrUnavailable, "sync requires a database")
	}

	added, err := s.storage.AddJob(ctx,
		NewSyncJobArgs(id, s.options.SyncMaxAttempts, s.options.SyncUniquePeriod), nil)
	if err != nil {
		return false, fmt.Errorf("could not schedule sync of competition %s: %w", id, err)
	}

	logger.Info(ctx, "sync scheduled", zap.Stringer("competitionID", id), zap.Bool("inserted", added))

	return added, nil
}

func (s *service) Snapshot(ctx context.Context, competition, kind string) (*domain.Snapshot, error) {
	id, err := domain.ResolveCompetition(competition)
	if err != nil {
		return nil, err
	}
	k, err := domain.ParseSnapshotKind(kind)
	if err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "snapshots require a database")
	}

	res, err := s.storage.LatestSnapshot(ctx, id, k)
	if err != nil {
		return nil, fmt.Errorf("could not get snapshot: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "snapshot not found")
	}

	return res, nil
}

func (s *service) Snapshots(ctx context.Context,
	competition, cursor string,
	limit uint) ([]domain.Snapshot, string, error) {
	id, err := domain.ResolveCompetition(competition)
	if err != nil {
		return nil, "", err
	}
	after, err := parseSnapshotCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	if s.storage == nil {
		return nil, "", serrors.With(serrors.ErrUnavailable, "snapshots require a database")
	}

	page, err := s.storage.Snapshots(ctx, id, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get snapshots: %w", err)
	}

	return page.Snapshots, formatSnapshotCursor(page.NextCursor), nil
}

// snapshot cursors read "<fetched_at RFC3339Nano>_<snapshot id>".
const cursorSep = "_"

func formatSnapshotCursor(c *storage.SnapshotCursor) string {
	if c == nil {
		return ""
	}

	return c.FetchedAt.UTC().Format(time.RFC3339Nano) + cursorSep + c.ID.String()
}

func parseSnapshotCursor(cursor string) (*storage.SnapshotCursor, error) {
	if cursor == "" {
		return nil, nil
	}

	ts, id, ok := strings.Cut(cursor, cursorSep)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}
	fetchedAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return &storage.SnapshotCursor{FetchedAt: fetchedAt, ID: domain.SnapshotID(uid)}, nil
}

func formatMatchday(md int) string {
	if md <= 0 {
		return ""
	}

	return strconv.Itoa(md)
}
