package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"football/internal/football"
	"football/pkg/domain"
	"football/pkg/footballapi"
	"football/pkg/logger"
	"football/pkg/metrics"
	"football/pkg/serrors"
	"football/pkg/storage"
)

// SyncWorker takes a snapshot of a competition's fixtures, table and teams
// and stores them in one transaction. All upstream calls go through the
// shared RateLimiter.
//
// Snapshots are keyed by season. The competition fixtures response carries
// none, so the season is the Year of the competition in the current
// competitions list, or the year of its earliest fixture when the
// competition is not listed.
//
// Error handling: an unknown or invalid competition cancels the job, upstream
// rate limiting snoozes it until the window resets, and any other error is
// returned so River retries with backoff.
type SyncWorker struct {
	river.WorkerDefaults[football.SyncJobArgs]

	client  footballapi.Client
	storage storage.Storage
	limiter *RateLimiter
	now     func() time.Time
}

// NewSyncWorker constructs a SyncWorker. limiter is shared with any other
// worker calling the same upstream.
func NewSyncWorker(client footballapi.Client, strg storage.Storage, limiter *RateLimiter) *SyncWorker {
	if limiter == nil {
		limiter = NewRateLimiter()
	}

	return &SyncWorker{
		client:  client,
		storage: strg,
		limiter: limiter,
		now:     time.Now,
	}
}

// Timeout bounds a single sync including the time spent waiting for budget.
func (w *SyncWorker) Timeout(*river.Job[football.SyncJobArgs]) time.Duration {
	return 5 * time.Minute
}

// Work runs one sync job.
func (w *SyncWorker) Work(ctx context.Context, job *river.Job[football.SyncJobArgs]) error {
	id := job.Args.CompetitionID
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("competitionID", id))

	fixtures, rl, err := call(ctx, w.limiter,
		func(ctx context.Context) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
			return w.client.CompetitionFixtures(ctx, id, footballapi.CompetitionFixturesQuery{})
		})
	if err != nil {
		return w.handleError(ctx, "fixtures", rl, err)
	}

	season, rl, err := w.season(ctx, id, fixtures)
	if err != nil {
		return w.handleError(ctx, "competitions", rl, err)
	}

	var table *domain.LeagueTable
	if !isCup(id) {
		table, rl, err = call(ctx, w.limiter,
			func(ctx context.Context) (*domain.LeagueTable, footballapi.RateLimitStatus, error) {
				return w.client.Table(ctx, id, 0)
			})
		switch {
		case errors.Is(err, serrors.ErrNotFound):
			logger.Info(ctx, "competition has no league table, skipping")
			table = nil
		case err != nil:
			return w.handleError(ctx, "table", rl, err)
		}
	}

	teams, rl, err := call(ctx, w.limiter,
		func(ctx context.Context) (*domain.TeamList, footballapi.RateLimitStatus, error) {
			return w.client.Teams(ctx, id)
		})
	if err != nil {
		return w.handleError(ctx, "teams", rl, err)
	}

	snapshots := make([]domain.Snapshot, 0, 3)
	fetchedAt := w.now().UTC()
	for _, p := range []struct {
		kind  domain.SnapshotKind
		value any
	}{
		{domain.SnapshotKindFixtures, fixtures},
		{domain.SnapshotKindTable, table},
		{domain.SnapshotKindTeams, teams},
	} {
		if isNil(p.value) {
			continue
		}
		b, err := json.Marshal(p.value)
		if err != nil {
			return river.JobCancel(fmt.Errorf("could not encode %s snapshot: %w", p.kind, err)) //nolint: wrapcheck
		}
		snapshots = append(snapshots, domain.Snapshot{
			CompetitionID: id,
			Kind:          p.kind,
			Season:        season,
			Payload:       b,
			FetchedAt:     fetchedAt,
		})
	}

	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, s := range snapshots {
			if _, err := tx.StoreSnapshot(ctx, s); err != nil {
				return fmt.Errorf("could not store %s snapshot: %w", s.Kind, err)
			}
		}

		return nil
	}); err != nil {
		logger.Error(ctx, "error in storing snapshots", zap.Error(err))

		return fmt.Errorf("could not store snapshots: %w", err)
	}

	for _, s := range snapshots {
		metrics.SnapshotsStored.WithLabelValues(string(s.Kind)).Inc()
	}
	logger.Info(ctx, "competition synced", zap.Int("snapshots", len(snapshots)), zap.String("season", season))

	return nil
}

func (w *SyncWorker) handleError(ctx context.Context,
	step string,
	rl footballapi.RateLimitStatus,
	err error) error {
	ctx = logger.WithFields(ctx, zap.String("step", step))

	switch {
	case errors.Is(err, serrors.ErrBadRequest), errors.Is(err, serrors.ErrNotFound):
		logger.Warn(ctx, "competition cannot be synced, cancelling job", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		dur := time.Until(rl.ResetAt)
		if !rl.Known() || dur < 0 {
			dur = time.Minute
		}
		logger.Warn(ctx, "upstream rate limited, snoozing job", zap.Duration("snooze", dur))

		return river.JobSnooze(dur) //nolint: wrapcheck
	default:
		logger.Error(ctx, "error in syncing competition", zap.Error(err))

		return fmt.Errorf("could not sync %s: %w", step, err)
	}
}

func (w *SyncWorker) season(ctx context.Context,
	id domain.CompetitionID,
	fixtures *domain.FixtureList) (string, footballapi.RateLimitStatus, error) {
	if fixtures.Season != "" {
		return fixtures.Season, footballapi.RateLimitStatus{}, nil
	}

	competitions, rl, err := call(ctx, w.limiter,
		func(ctx context.Context) ([]domain.Competition, footballapi.RateLimitStatus, error) {
			return w.client.Competitions(ctx, "")
		})
	if err != nil {
		return "", rl, err
	}
	for _, c := range competitions {
		if c.ID == id && c.Year != "" {
			return c.Year, rl, nil
		}
	}

	var first time.Time
	for _, f := range fixtures.Fixtures {
		if !f.Date.IsZero() && (first.IsZero() || f.Date.Before(first)) {
			first = f.Date
		}
	}
	if first.IsZero() {
		logger.Warn(ctx, "could not determine season of competition")

		return "", rl, nil
	}

	return strconv.Itoa(first.Year()), rl, nil
}

func isCup(id domain.CompetitionID) bool {
	code, ok := domain.LeagueCodeOf(id)

	return ok && domain.Competition{ID: id, League: code}.IsCup()
}

func isNil(v any) bool {
	switch t := v.(type) {
	case *domain.FixtureList:
		return t == nil
	case *domain.LeagueTable:
		return t == nil
	case *domain.TeamList:
		return t == nil
	default:
		return v == nil
	}
}
