package football

import (
	"context"

	"football/pkg/domain"
)

// Service exposes the football data operations to the API and CLI. It takes
// user-facing references (league codes or numeric IDs) and raw parameter
// strings, validates them, and answers from the cache or the upstream API.
//
//go:generate mockgen -package mockfootball -source=interface.go -destination=mock/mockfootball.go *
type Service interface {
	Competitions(ctx context.Context, season string) ([]domain.Competition, error)
	Teams(ctx context.Context, competition string) (*domain.TeamList, error)
	Table(ctx context.Context, competition, matchday string) (*domain.LeagueTable, error)
	CompetitionFixtures(ctx context.Context, competition, matchday, timeFrame string) (*domain.FixtureList, error)
	Fixtures(ctx context.Context, timeFrame, league string) (*domain.FixtureList, error)
	Fixture(ctx context.Context, fixture string) (*domain.FixtureDetails, error)
	Team(ctx context.Context, team string) (*domain.Team, error)
	Players(ctx context.Context, team string) (*domain.PlayerList, error)
	TeamFixtures(ctx context.Context, team, season, timeFrame, venue string) (*domain.FixtureList, error)
	// TeamOverview fetches a team together with its squad and fixtures.
	TeamOverview(ctx context.Context, team string) (*domain.TeamOverview, error)

	// ScheduleSync enqueues a snapshot sync of the competition. It reports
	// false when an equivalent job is already queued or recently completed.
	ScheduleSync(ctx context.Context, competition string) (bool, error)
	// Snapshot returns the latest stored snapshot of kind for the competition.
	Snapshot(ctx context.Context, competition, kind string) (*domain.Snapshot, error)
	// Snapshots pages through the stored snapshots of a competition. cursor
	// is an RFC3339 timestamp returned by a previous call.
	Snapshots(ctx context.Context, competition, cursor string, limit uint) ([]domain.Snapshot, string, error)
}
