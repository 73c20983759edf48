package domain

import (
	"regexp"
	"strconv"
	"strings"

	"football/pkg/serrors"
)

//nolint: gochecknoglobals
var (
	seasonPattern    = regexp.MustCompile(`^\d{4}$`)
	matchdayPattern  = regexp.MustCompile(`^\d+$`)
	timeFramePattern = regexp.MustCompile(`^[pn][1-9]\d?$`)
)

// Season is a four digit starting year, e.g. "2017" for 2017/18.
type Season string

// ParseSeason validates s as a season. An empty string is a valid "unset" season.
func ParseSeason(s string) (Season, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !seasonPattern.MatchString(s) {
		return "", serrors.With(serrors.ErrBadRequest, "season is invalid")
	}

	return Season(s), nil
}

// ParseMatchday validates s as a matchday number. An empty string yields 0,
// meaning "unset".
func ParseMatchday(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !matchdayPattern.MatchString(s) {
		return 0, serrors.With(serrors.ErrBadRequest, "matchday is invalid")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "matchday is invalid")
	}

	return n, nil
}

// TimeFrame selects fixtures in the past ("p") or next ("n") number of days,
// e.g. "p7" or "n14".
type TimeFrame string

// ParseTimeFrame validates s as a time frame. An empty string is "unset".
func ParseTimeFrame(s string) (TimeFrame, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !timeFramePattern.MatchString(s) {
		return "", serrors.With(serrors.ErrBadRequest, "time_frame is invalid")
	}

	return TimeFrame(s), nil
}

// IsPast reports whether the frame looks backwards.
func (t TimeFrame) IsPast() bool { return strings.HasPrefix(string(t), "p") }

// Days returns the length of the frame in days, or 0 for an unset frame.
func (t TimeFrame) Days() int {
	if len(t) < 2 {
		return 0
	}
	n, _ := strconv.Atoi(string(t[1:]))

	return n
}

// Venue filters team fixtures by where they are played.
type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)

// ParseVenue validates s as a venue. An empty string is "unset".
func ParseVenue(s string) (Venue, error) {
	switch v := Venue(strings.TrimSpace(s)); v {
	case "":
		return "", nil
	case VenueHome, VenueAway:
		return v, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "venue is invalid")
	}
}

// ParseLeagueFilter validates code as a league filter for the fixtures list.
// The code is returned upper-cased.
func ParseLeagueFilter(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	if !IsLeagueCode(code) {
		return "", serrors.With(serrors.ErrBadRequest, "league_code is invalid")
	}

	return strings.ToUpper(code), nil
}
