package worker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"football/internal/config"
	"football/internal/worker"
	"football/pkg/domain"
)

func TestNewOptions_ResolvesCompetitions(t *testing.T) {
	var cfg config.Config
	cfg.Sync.Competitions = []string{"PL", "bl1", "464"}
	cfg.Sync.Interval = time.Hour
	cfg.Sync.MaxWorkers = 2

	opts, err := worker.NewOptions(&cfg)
	require.NoError(t, err)
	require.Equal(t, []domain.CompetitionID{445, 452, 464}, opts.Competitions)
	require.Equal(t, time.Hour, opts.Interval)
	require.Equal(t, 2, opts.MaxWorkers)

	cfg.Sync.Competitions = []string{"PL", "nope"}
	_, err = worker.NewOptions(&cfg)
	require.Error(t, err)
}

func TestPeriodicJobs(t *testing.T) {
	jobs := worker.PeriodicJobs(worker.Options{
		Competitions: []domain.CompetitionID{445, 452},
		Interval:     time.Hour,
		Retention:    24 * time.Hour,
	})
	require.Len(t, jobs, 3)

	require.Empty(t, worker.PeriodicJobs(worker.Options{Competitions: []domain.CompetitionID{445}}))
}
