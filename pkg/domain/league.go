package domain

import (
	"sort"
	"strconv"
	"strings"

	"football/pkg/serrors"
)

// CompetitionID identifies a competition on football-data.org.
type CompetitionID int64

// TeamID identifies a team on football-data.org.
type TeamID int64

// FixtureID identifies a fixture on football-data.org.
type FixtureID int64

func (id CompetitionID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id TeamID) String() string        { return strconv.FormatInt(int64(id), 10) }
func (id FixtureID) String() string     { return strconv.FormatInt(int64(id), 10) }

// leagueCodes maps league codes to the competition IDs of the v1 API.
//
//nolint: gochecknoglobals
var leagueCodes = map[string]CompetitionID{
	"BSA": 444,
	"PL":  445,
	"ELC": 446,
	"EL1": 447,
	"EL2": 448,
	"DED": 449,
	"FL1": 450,
	"FL2": 451,
	"BL1": 452,
	"BL2": 453,
	"PD":  455,
	"SA":  456,
	"PPL": 457,
	"DFB": 458,
	"SB":  459,
	"CL":  464,
	"AAL": 466,
}

// LeagueCodes returns all known league codes sorted alphabetically.
func LeagueCodes() []string {
	codes := make([]string, 0, len(leagueCodes))
	for code := range leagueCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// IsLeagueCode reports whether code is a known league code. The match is
// case-insensitive.
func IsLeagueCode(code string) bool {
	_, ok := leagueCodes[strings.ToUpper(strings.TrimSpace(code))]

	return ok
}

// LeagueCodeOf returns the league code of a competition ID, if it has one.
func LeagueCodeOf(id CompetitionID) (string, bool) {
	for code, cid := range leagueCodes {
		if cid == id {
			return code, true
		}
	}

	return "", false
}

// ResolveCompetition turns a competition reference into its ID. A reference
// is either a positive decimal ID or a league code such as "PL".
func ResolveCompetition(ref string) (CompetitionID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "competition is required")
	}

	if n, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if n <= 0 {
			return 0, serrors.With(serrors.ErrBadRequest, "competition id %d is invalid", n)
		}

		return CompetitionID(n), nil
	}

	id, ok := leagueCodes[strings.ToUpper(ref)]
	if !ok {
		return 0, serrors.With(serrors.ErrBadRequest, "unknown league code %q", ref)
	}

	return id, nil
}

// ParseTeamID parses a positive decimal team ID.
func ParseTeamID(s string) (TeamID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "team id %q is invalid", s)
	}

	return TeamID(n), nil
}

// ParseFixtureID parses a positive decimal fixture ID.
func ParseFixtureID(s string) (FixtureID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "fixture id %q is invalid", s)
	}

	return FixtureID(n), nil
}
