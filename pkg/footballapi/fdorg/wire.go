package fdorg

import (
	"bytes"
	"encoding/json"
	"time"

	"football/pkg/domain"
)

// The v1 API identifies most resources only through their _links, so the wire
// types below keep the links and resolve IDs when converting to domain types.

type link struct {
	Href string `json:"href"`
}

func linkID(l link) int64 {
	id, _ := domain.IDFromLink(l.Href)

	return id
}

// flexString accepts both JSON strings and numbers. The API reports seasons
// as numbers on some endpoints and as strings on others.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""

		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err //nolint: wrapcheck
		}
		*f = flexString(s)

		return nil
	}
	*f = flexString(b)

	return nil
}

type wireTeam struct {
	Links struct {
		Self link `json:"self"`
	} `json:"_links"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	ShortName        string `json:"shortName"`
	SquadMarketValue string `json:"squadMarketValue"`
	CrestURL         string `json:"crestUrl"`
}

func (w wireTeam) toDomain() domain.Team {
	return domain.Team{
		ID:               domain.TeamID(linkID(w.Links.Self)),
		Name:             w.Name,
		Code:             w.Code,
		ShortName:        w.ShortName,
		SquadMarketValue: w.SquadMarketValue,
		CrestURL:         w.CrestURL,
	}
}

type wireTeamList struct {
	Count int        `json:"count"`
	Teams []wireTeam `json:"teams"`
}

func (w wireTeamList) toDomain() *domain.TeamList {
	out := &domain.TeamList{Count: w.Count, Teams: make([]domain.Team, 0, len(w.Teams))}
	for _, t := range w.Teams {
		out.Teams = append(out.Teams, t.toDomain())
	}

	return out
}

type wireFixture struct {
	ID    int64 `json:"id"`
	Links struct {
		Self        link `json:"self"`
		Competition link `json:"competition"`
		HomeTeam    link `json:"homeTeam"`
		AwayTeam    link `json:"awayTeam"`
	} `json:"_links"`
	Date         time.Time            `json:"date"`
	Status       string               `json:"status"`
	Matchday     int                  `json:"matchday"`
	HomeTeamName string               `json:"homeTeamName"`
	AwayTeamName string               `json:"awayTeamName"`
	Result       domain.FixtureResult `json:"result"`
	Odds         *domain.Odds         `json:"odds"`
}

func (w wireFixture) toDomain() domain.Fixture {
	id := w.ID
	if id == 0 {
		id = linkID(w.Links.Self)
	}

	return domain.Fixture{
		ID:            domain.FixtureID(id),
		CompetitionID: domain.CompetitionID(linkID(w.Links.Competition)),
		HomeTeamID:    domain.TeamID(linkID(w.Links.HomeTeam)),
		AwayTeamID:    domain.TeamID(linkID(w.Links.AwayTeam)),
		Date:          w.Date,
		Status:        domain.FixtureStatus(w.Status),
		Matchday:      w.Matchday,
		HomeTeamName:  w.HomeTeamName,
		AwayTeamName:  w.AwayTeamName,
		Result:        w.Result,
		Odds:          w.Odds,
	}
}

func fixturesToDomain(in []wireFixture) []domain.Fixture {
	out := make([]domain.Fixture, 0, len(in))
	for _, f := range in {
		out = append(out, f.toDomain())
	}

	return out
}

type wireFixtureList struct {
	Season         flexString    `json:"season"`
	TimeFrameStart string        `json:"timeFrameStart"`
	TimeFrameEnd   string        `json:"timeFrameEnd"`
	Count          int           `json:"count"`
	Fixtures       []wireFixture `json:"fixtures"`
}

func (w wireFixtureList) toDomain() *domain.FixtureList {
	return &domain.FixtureList{
		Count:          w.Count,
		Season:         string(w.Season),
		TimeFrameStart: w.TimeFrameStart,
		TimeFrameEnd:   w.TimeFrameEnd,
		Fixtures:       fixturesToDomain(w.Fixtures),
	}
}

type wireFixtureDetails struct {
	Fixture   wireFixture `json:"fixture"`
	Head2Head *struct {
		Count          int           `json:"count"`
		TimeFrameStart string        `json:"timeFrameStart"`
		TimeFrameEnd   string        `json:"timeFrameEnd"`
		HomeTeamWins   int           `json:"homeTeamWins"`
		AwayTeamWins   int           `json:"awayTeamWins"`
		Draws          int           `json:"draws"`
		Fixtures       []wireFixture `json:"fixtures"`
	} `json:"head2head"`
}

func (w wireFixtureDetails) toDomain() *domain.FixtureDetails {
	out := &domain.FixtureDetails{Fixture: w.Fixture.toDomain()}
	if h := w.Head2Head; h != nil {
		out.Head2Head = &domain.Head2Head{
			Count:          h.Count,
			TimeFrameStart: h.TimeFrameStart,
			TimeFrameEnd:   h.TimeFrameEnd,
			HomeTeamWins:   h.HomeTeamWins,
			AwayTeamWins:   h.AwayTeamWins,
			Draws:          h.Draws,
			Fixtures:       fixturesToDomain(h.Fixtures),
		}
	}

	return out
}

type wireStanding struct {
	Links struct {
		Team link `json:"team"`
	} `json:"_links"`
	Position       int            `json:"position"`
	TeamName       string         `json:"teamName"`
	CrestURI       string         `json:"crestURI"`
	PlayedGames    int            `json:"playedGames"`
	Points         int            `json:"points"`
	Goals          int            `json:"goals"`
	GoalsAgainst   int            `json:"goalsAgainst"`
	GoalDifference int            `json:"goalDifference"`
	Wins           int            `json:"wins"`
	Draws          int            `json:"draws"`
	Losses         int            `json:"losses"`
	Home           *domain.Record `json:"home"`
	Away           *domain.Record `json:"away"`
}

type wireLeagueTable struct {
	LeagueCaption string                            `json:"leagueCaption"`
	Matchday      int                               `json:"matchday"`
	Standing      []wireStanding                    `json:"standing"`
	Standings     map[string][]domain.GroupStanding `json:"standings"`
}

func (w wireLeagueTable) toDomain() *domain.LeagueTable {
	out := &domain.LeagueTable{
		LeagueCaption: w.LeagueCaption,
		Matchday:      w.Matchday,
	}
	if len(w.Standing) > 0 {
		out.Standing = make([]domain.Standing, 0, len(w.Standing))
		for _, s := range w.Standing {
			out.Standing = append(out.Standing, domain.Standing{
				Position:       s.Position,
				TeamID:         domain.TeamID(linkID(s.Links.Team)),
				TeamName:       s.TeamName,
				CrestURI:       s.CrestURI,
				PlayedGames:    s.PlayedGames,
				Points:         s.Points,
				Goals:          s.Goals,
				GoalsAgainst:   s.GoalsAgainst,
				GoalDifference: s.GoalDifference,
				Wins:           s.Wins,
				Draws:          s.Draws,
				Losses:         s.Losses,
				Home:           s.Home,
				Away:           s.Away,
			})
		}
	}
	if len(w.Standings) > 0 {
		out.Groups = w.Standings
	}

	return out
}
