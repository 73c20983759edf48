// Package footballapi defines the client abstraction over a football data
// provider together with the typed queries its operations accept.
package footballapi

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"football/pkg/domain"
)

// RateLimitStatus describes the provider's rate-limit window as observed on
// the most recent response.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of requests allowed per window.
	Remaining int       // Remaining is how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the window resets. Zero when unknown.
}

// Known reports whether the status was populated from response headers.
func (s RateLimitStatus) Known() bool { return !s.ResetAt.IsZero() }

// CompetitionFixturesQuery filters the fixtures of a single competition.
type CompetitionFixturesQuery struct {
	Matchday  int
	TimeFrame domain.TimeFrame
}

// Validate checks the query fields. Zero values are unset and always valid.
func (q CompetitionFixturesQuery) Validate() error {
	if q.Matchday < 0 {
		_, err := domain.ParseMatchday(strconv.Itoa(q.Matchday))

		return err
	}
	_, err := domain.ParseTimeFrame(string(q.TimeFrame))

	return err
}

// Values encodes the query as URL parameters.
func (q CompetitionFixturesQuery) Values() url.Values {
	v := url.Values{}
	if q.Matchday > 0 {
		v.Set("matchday", strconv.Itoa(q.Matchday))
	}
	if q.TimeFrame != "" {
		v.Set("timeFrame", string(q.TimeFrame))
	}

	return v
}

// FixturesQuery filters the fixtures list across all competitions.
type FixturesQuery struct {
	TimeFrame domain.TimeFrame
	League    string
}

// Validate checks the query fields.
func (q FixturesQuery) Validate() error {
	if _, err := domain.ParseTimeFrame(string(q.TimeFrame)); err != nil {
		return err
	}
	_, err := domain.ParseLeagueFilter(q.League)

	return err
}

// Values encodes the query as URL parameters.
func (q FixturesQuery) Values() url.Values {
	v := url.Values{}
	if q.TimeFrame != "" {
		v.Set("timeFrame", string(q.TimeFrame))
	}
	if q.League != "" {
		v.Set("league", q.League)
	}

	return v
}

// TeamFixturesQuery filters the fixtures of a single team.
type TeamFixturesQuery struct {
	Season    domain.Season
	TimeFrame domain.TimeFrame
	Venue     domain.Venue
}

// Validate checks the query fields.
func (q TeamFixturesQuery) Validate() error {
	if _, err := domain.ParseSeason(string(q.Season)); err != nil {
		return err
	}
	if _, err := domain.ParseTimeFrame(string(q.TimeFrame)); err != nil {
		return err
	}
	_, err := domain.ParseVenue(string(q.Venue))

	return err
}

// Values encodes the query as URL parameters.
func (q TeamFixturesQuery) Values() url.Values {
	v := url.Values{}
	if q.Season != "" {
		v.Set("season", string(q.Season))
	}
	if q.TimeFrame != "" {
		v.Set("timeFrame", string(q.TimeFrame))
	}
	if q.Venue != "" {
		v.Set("venue", string(q.Venue))
	}

	return v
}

// Client is the abstraction over a football data provider. Every operation
// returns the rate-limit status observed on its response, also on failure when
// a response was received.
//
//go:generate mockgen -package mockfootballapi -source=interface.go -destination=mock/mockfootballapi.go *
type Client interface {
	// Competitions lists the competitions of a season, or the current one
	// when season is empty.
	Competitions(ctx context.Context, season domain.Season) ([]domain.Competition, RateLimitStatus, error)
	// Teams lists the teams of a competition.
	Teams(ctx context.Context, id domain.CompetitionID) (*domain.TeamList, RateLimitStatus, error)
	// Table returns the competition's table, optionally as of a matchday.
	Table(ctx context.Context, id domain.CompetitionID, matchday int) (*domain.LeagueTable, RateLimitStatus, error)
	// CompetitionFixtures lists the fixtures of a competition.
	CompetitionFixtures(ctx context.Context,
		id domain.CompetitionID,
		q CompetitionFixturesQuery) (*domain.FixtureList, RateLimitStatus, error)
	// Fixtures lists fixtures across all competitions.
	Fixtures(ctx context.Context, q FixturesQuery) (*domain.FixtureList, RateLimitStatus, error)
	// Fixture returns a single fixture with its head to head record.
	Fixture(ctx context.Context, id domain.FixtureID) (*domain.FixtureDetails, RateLimitStatus, error)
	// TeamFixtures lists the fixtures of a team.
	TeamFixtures(ctx context.Context,
		id domain.TeamID,
		q TeamFixturesQuery) (*domain.FixtureList, RateLimitStatus, error)
	// Team returns a team's base data.
	Team(ctx context.Context, id domain.TeamID) (*domain.Team, RateLimitStatus, error)
	// Players returns a team's squad.
	Players(ctx context.Context, id domain.TeamID) (*domain.PlayerList, RateLimitStatus, error)
}
