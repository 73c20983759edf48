// Package worker runs the River background jobs: periodic competition syncs
// and snapshot pruning.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"football/internal/config"
	"football/internal/football"
	"football/pkg/domain"
	"football/pkg/footballapi"
	"football/pkg/logger"
	"football/pkg/storage"
)

// Deps are the collaborators the workers call.
type Deps struct {
	Client  footballapi.Client
	Storage storage.Storage
	// Limiter is shared by all sync jobs. A new one is created when nil.
	Limiter *RateLimiter
}

// Options control the queue and the periodic jobs.
type Options struct {
	MaxWorkers int
	// Competitions are synced every Interval. The first sync runs on start.
	Competitions []domain.CompetitionID
	Interval     time.Duration
	MaxAttempts  int
	UniquePeriod time.Duration
	// Retention is the age after which snapshots are pruned.
	Retention time.Duration
}

// NewOptions builds Options from the config and resolves the configured
// competition references.
func NewOptions(cfg *config.Config) (Options, error) {
	comps := make([]domain.CompetitionID, 0, len(cfg.Sync.Competitions))
	for _, ref := range cfg.Sync.Competitions {
		id, err := domain.ResolveCompetition(ref)
		if err != nil {
			return Options{}, fmt.Errorf("could not resolve sync competition %q: %w", ref, err)
		}
		comps = append(comps, id)
	}

	return Options{
		MaxWorkers:   cfg.Sync.MaxWorkers,
		Competitions: comps,
		Interval:     cfg.Sync.Interval,
		MaxAttempts:  cfg.Sync.MaxAttempts,
		UniquePeriod: cfg.Sync.UniquePeriod,
		Retention:    cfg.Sync.Retention,
	}, nil
}

// PeriodicJobs returns the recurring sync and prune jobs.
func PeriodicJobs(opts Options) []*river.PeriodicJob {
	var jobs []*river.PeriodicJob
	if opts.Interval > 0 {
		for _, id := range opts.Competitions {
			args := football.NewSyncJobArgs(id, opts.MaxAttempts, opts.UniquePeriod)
			jobs = append(jobs, river.NewPeriodicJob(
				river.PeriodicInterval(opts.Interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return args, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			))
		}
	}
	if opts.Retention > 0 {
		jobs = append(jobs, river.NewPeriodicJob(
			river.PeriodicInterval(time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return PruneJobArgs{}, nil
			},
			nil,
		))
	}

	return jobs
}

// Start registers the workers and starts a River client on dbPool. The
// caller stops it with Stop on shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	limiter := deps.Limiter
	if limiter == nil {
		limiter = NewRateLimiter()
	}
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewSyncWorker(deps.Client, deps.Storage, limiter))
	river.AddWorker(workers, NewPruneWorker(deps.Storage, opts.Retention))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: PeriodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
