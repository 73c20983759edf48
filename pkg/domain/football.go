package domain

import (
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// Competition is a league or cup season.
type Competition struct {
	ID                CompetitionID `json:"id"                yaml:"id"`
	Caption           string        `json:"caption"           yaml:"caption"`
	League            string        `json:"league"            yaml:"league"`
	Year              string        `json:"year"              yaml:"year"`
	CurrentMatchday   int           `json:"currentMatchday"   yaml:"currentMatchday"`
	NumberOfMatchdays int           `json:"numberOfMatchdays" yaml:"numberOfMatchdays"`
	NumberOfTeams     int           `json:"numberOfTeams"     yaml:"numberOfTeams"`
	NumberOfGames     int           `json:"numberOfGames"     yaml:"numberOfGames"`
	LastUpdated       time.Time     `json:"lastUpdated"       yaml:"lastUpdated"`
}

// IsCup reports whether the competition is played in groups and knockouts and
// therefore has no single league table.
func (c Competition) IsCup() bool {
	switch c.League {
	case "CL", "EL", "DFB", "WC", "EC":
		return true
	default:
		return false
	}
}

// Team holds a team's base data. SquadMarketValue is the formatted value
// reported by the API (it can be empty).
type Team struct {
	ID               TeamID `json:"id"                         yaml:"id"`
	Name             string `json:"name"                       yaml:"name"`
	Code             string `json:"code,omitempty"             yaml:"code,omitempty"`
	ShortName        string `json:"shortName,omitempty"        yaml:"shortName,omitempty"`
	SquadMarketValue string `json:"squadMarketValue,omitempty" yaml:"squadMarketValue,omitempty"`
	CrestURL         string `json:"crestUrl,omitempty"         yaml:"crestUrl,omitempty"`
}

// TeamList is the set of teams taking part in a competition.
type TeamList struct {
	Count int    `json:"count" yaml:"count"`
	Teams []Team `json:"teams" yaml:"teams"`
}

// Player is a squad member.
type Player struct {
	Name          string `json:"name"                    yaml:"name"`
	Position      string `json:"position,omitempty"      yaml:"position,omitempty"`
	JerseyNumber  int    `json:"jerseyNumber,omitempty"  yaml:"jerseyNumber,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"   yaml:"dateOfBirth,omitempty"`
	Nationality   string `json:"nationality,omitempty"   yaml:"nationality,omitempty"`
	ContractUntil string `json:"contractUntil,omitempty" yaml:"contractUntil,omitempty"`
	MarketValue   string `json:"marketValue,omitempty"   yaml:"marketValue,omitempty"`
}

// PlayerList is a team's squad.
type PlayerList struct {
	Count   int      `json:"count"   yaml:"count"`
	Players []Player `json:"players" yaml:"players"`
}

// FixtureStatus is the lifecycle state of a fixture.
type FixtureStatus string

const (
	FixtureStatusScheduled FixtureStatus = "SCHEDULED"
	FixtureStatusTimed     FixtureStatus = "TIMED"
	FixtureStatusPostponed FixtureStatus = "POSTPONED"
	FixtureStatusInPlay    FixtureStatus = "IN_PLAY"
	FixtureStatusCanceled  FixtureStatus = "CANCELED"
	FixtureStatusFinished  FixtureStatus = "FINISHED"
)

// Score is a pair of goal counts. Nil counts mean the fixture has not started.
type Score struct {
	GoalsHomeTeam *int `json:"goalsHomeTeam" yaml:"goalsHomeTeam"`
	GoalsAwayTeam *int `json:"goalsAwayTeam" yaml:"goalsAwayTeam"`
}

// FixtureResult is the full time score with an optional half time score.
type FixtureResult struct {
	Score    `yaml:",inline"`
	HalfTime *Score `json:"halfTime,omitempty" yaml:"halfTime,omitempty"`
}

// Odds are the bookmaker odds attached to a fixture, when available.
type Odds struct {
	HomeWin float64 `json:"homeWin" yaml:"homeWin"`
	Draw    float64 `json:"draw"    yaml:"draw"`
	AwayWin float64 `json:"awayWin" yaml:"awayWin"`
}

// Fixture is a single match.
type Fixture struct {
	ID            FixtureID     `json:"id"               yaml:"id"`
	CompetitionID CompetitionID `json:"competitionId"    yaml:"competitionId"`
	HomeTeamID    TeamID        `json:"homeTeamId"       yaml:"homeTeamId"`
	AwayTeamID    TeamID        `json:"awayTeamId"       yaml:"awayTeamId"`
	Date          time.Time     `json:"date"             yaml:"date"`
	Status        FixtureStatus `json:"status"           yaml:"status"`
	Matchday      int           `json:"matchday"         yaml:"matchday"`
	HomeTeamName  string        `json:"homeTeamName"     yaml:"homeTeamName"`
	AwayTeamName  string        `json:"awayTeamName"     yaml:"awayTeamName"`
	Result        FixtureResult `json:"result"           yaml:"result"`
	Odds          *Odds         `json:"odds,omitempty"   yaml:"odds,omitempty"`
}

// FixtureList is a page of fixtures. Season is set for team fixtures and the
// time frame bounds for the global fixtures list.
type FixtureList struct {
	Count          int       `json:"count"                    yaml:"count"`
	Season         string    `json:"season,omitempty"         yaml:"season,omitempty"`
	TimeFrameStart string    `json:"timeFrameStart,omitempty" yaml:"timeFrameStart,omitempty"`
	TimeFrameEnd   string    `json:"timeFrameEnd,omitempty"   yaml:"timeFrameEnd,omitempty"`
	Fixtures       []Fixture `json:"fixtures"                 yaml:"fixtures"`
}

// Head2Head summarizes previous meetings of a fixture's two teams.
type Head2Head struct {
	Count          int       `json:"count"          yaml:"count"`
	TimeFrameStart string    `json:"timeFrameStart" yaml:"timeFrameStart"`
	TimeFrameEnd   string    `json:"timeFrameEnd"   yaml:"timeFrameEnd"`
	HomeTeamWins   int       `json:"homeTeamWins"   yaml:"homeTeamWins"`
	AwayTeamWins   int       `json:"awayTeamWins"   yaml:"awayTeamWins"`
	Draws          int       `json:"draws"          yaml:"draws"`
	Fixtures       []Fixture `json:"fixtures"       yaml:"fixtures"`
}

// FixtureDetails is a fixture together with its head to head record.
type FixtureDetails struct {
	Fixture   Fixture    `json:"fixture"             yaml:"fixture"`
	Head2Head *Head2Head `json:"head2head,omitempty" yaml:"head2head,omitempty"`
}

// Record is a team's results over a subset of its games.
type Record struct {
	Goals        int `json:"goals"        yaml:"goals"`
	GoalsAgainst int `json:"goalsAgainst" yaml:"goalsAgainst"`
	Wins         int `json:"wins"         yaml:"wins"`
	Draws        int `json:"draws"        yaml:"draws"`
	Losses       int `json:"losses"       yaml:"losses"`
}

// Standing is one row of a league table.
type Standing struct {
	Position       int     `json:"position"           yaml:"position"`
	TeamID         TeamID  `json:"teamId"             yaml:"teamId"`
	TeamName       string  `json:"teamName"           yaml:"teamName"`
	CrestURI       string  `json:"crestURI,omitempty" yaml:"crestURI,omitempty"`
	PlayedGames    int     `json:"playedGames"        yaml:"playedGames"`
	Points         int     `json:"points"             yaml:"points"`
	Goals          int     `json:"goals"              yaml:"goals"`
	GoalsAgainst   int     `json:"goalsAgainst"       yaml:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"     yaml:"goalDifference"`
	Wins           int     `json:"wins"               yaml:"wins"`
	Draws          int     `json:"draws"              yaml:"draws"`
	Losses         int     `json:"losses"             yaml:"losses"`
	Home           *Record `json:"home,omitempty"     yaml:"home,omitempty"`
	Away           *Record `json:"away,omitempty"     yaml:"away,omitempty"`
}

// GroupStanding is one row of a cup group table.
type GroupStanding struct {
	Group          string `json:"group"              yaml:"group"`
	Rank           int    `json:"rank"               yaml:"rank"`
	Team           string `json:"team"               yaml:"team"`
	TeamID         TeamID `json:"teamId"             yaml:"teamId"`
	CrestURI       string `json:"crestURI,omitempty" yaml:"crestURI,omitempty"`
	PlayedGames    int    `json:"playedGames"        yaml:"playedGames"`
	Points         int    `json:"points"             yaml:"points"`
	Goals          int    `json:"goals"              yaml:"goals"`
	GoalsAgainst   int    `json:"goalsAgainst"       yaml:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"     yaml:"goalDifference"`
}

// LeagueTable is a competition's table, sorted first to last. League
// competitions fill Standing, cups fill Groups keyed by group letter.
type LeagueTable struct {
	LeagueCaption string                     `json:"leagueCaption"    yaml:"leagueCaption"`
	Matchday      int                        `json:"matchday"         yaml:"matchday"`
	Standing      []Standing                 `json:"standing,omitempty" yaml:"standing,omitempty"`
	Groups        map[string][]GroupStanding `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// TeamOverview combines a team with its squad and fixtures.
type TeamOverview struct {
	Team     Team      `json:"team"     yaml:"team"`
	Players  []Player  `json:"players"  yaml:"players"`
	Fixtures []Fixture `json:"fixtures" yaml:"fixtures"`
}

// IDFromLink extracts the trailing numeric path segment of a resource link,
// e.g. 66 from "http://api.football-data.org/v1/teams/66".
func IDFromLink(href string) (int64, bool) {
	if href == "" {
		return 0, false
	}
	p := href
	if u, err := url.Parse(href); err == nil {
		p = u.Path
	}
	last := path.Base(strings.TrimRight(p, "/"))
	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}
