// Package fdorg provides a footballapi.Client implementation backed by the
// football-data.org v1 REST API.
package fdorg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"football/pkg/domain"
	"football/pkg/footballapi"
	"football/pkg/metrics"
	"football/pkg/serrors"
)

// DefaultBaseURL is the root of the v1 API.
const DefaultBaseURL = "http://api.football-data.org/v1/"

// DefaultRequestsPerMinute is the request budget of the free plan.
const DefaultRequestsPerMinute = 10

// Options configure a Client.
type Options struct {
	// BaseURL overrides DefaultBaseURL, e.g. to point at a test server.
	BaseURL string
	// Token is the API key sent as X-Auth-Token. Anonymous access is used when empty.
	Token string
	// RequestsPerMinute is the plan's request budget. The API only reports the
	// remaining budget, so the limit has to be configured.
	RequestsPerMinute int
}

// Client talks to the football-data.org REST API and fulfills the
// footballapi.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
	limit      int
	now        func() time.Time
}

// Ensure Client conforms to the footballapi.Client interface at compile time.
var _ footballapi.Client = (*Client)(nil)

// New constructs a Client that uses httpClient to reach the API.
func New(httpClient *http.Client, opts Options) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}
	limit := opts.RequestsPerMinute
	if limit <= 0 {
		limit = DefaultRequestsPerMinute
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		token:      opts.Token,
		limit:      limit,
		now:        time.Now,
	}, nil
}

// BuildURL resolves action against base and appends the encoded query. The
// bare collection actions "competitions" and "fixtures" are addressed with a
// trailing slash as the v1 API expects.
func BuildURL(base *url.URL, action string, query url.Values) string {
	if action == "competitions" || action == "fixtures" {
		action += "/"
	}
	rel := &url.URL{Path: action}
	if len(query) > 0 {
		// Encode sorts by key.
		rel.RawQuery = query.Encode()
	}

	return base.ResolveReference(rel).String()
}

// ParseRateLimit extracts the rate-limit status from v1 response headers.
// X-RequestCounter-Reset holds the seconds until the window resets relative to
// now. A response without it yields a zero status and no error.
func ParseRateLimit(h http.Header, now time.Time, limit int) (footballapi.RateLimitStatus, error) {
	resetStr := strings.TrimSpace(h.Get("X-RequestCounter-Reset"))
	if resetStr == "" {
		return footballapi.RateLimitStatus{}, nil
	}
	secs, err := strconv.Atoi(resetStr)
	if err != nil || secs < 0 {
		return footballapi.RateLimitStatus{}, fmt.Errorf("could not parse counter reset %q", resetStr)
	}

	remainingStr := h.Get("X-Requests-Available-Minute")
	if remainingStr == "" {
		remainingStr = h.Get("X-Requests-Available")
	}
	remaining, err := strconv.Atoi(strings.TrimSpace(remainingStr))
	if err != nil {
		remaining = 0
	}
	if limit < remaining {
		limit = remaining
	}

	return footballapi.RateLimitStatus{
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(time.Duration(secs) * time.Second).UTC(),
	}, nil
}

// upstreamMessage prefers the "error" or "message" field of a JSON error body
// and falls back to the trimmed body.
func upstreamMessage(b []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}

	return strings.TrimSpace(string(b))
}

// get performs a GET request for action and decodes a successful response into out.
func (c *Client) get(ctx context.Context,
	endpoint string,
	action string,
	query url.Values,
	out any) (footballapi.RateLimitStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildURL(c.baseURL, action, query), nil)
	if err != nil {
		return footballapi.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(endpoint, "error").Inc()

		return footballapi.RateLimitStatus{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	rl, err := ParseRateLimit(resp.Header, c.now(), c.limit)
	if err != nil {
		return rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return rl, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if kind := serrors.FromHTTPStatus(resp.StatusCode); kind != nil {
			return rl, serrors.With(kind, "%s failed: %s", endpoint, upstreamMessage(b))
		}

		return rl, fmt.Errorf("%s failed with status %d: %s", endpoint, resp.StatusCode, upstreamMessage(b))
	}

	if err := json.Unmarshal(b, out); err != nil {
		return rl, fmt.Errorf("could not decode response: %w", err)
	}

	return rl, nil
}

// Competitions lists the competitions of a season.
func (c *Client) Competitions(ctx context.Context,
	season domain.Season) ([]domain.Competition, footballapi.RateLimitStatus, error) {
	if _, err := domain.ParseSeason(string(season)); err != nil {
		return nil, footballapi.RateLimitStatus{}, err
	}
	q := url.Values{}
	if season != "" {
		q.Set("season", string(season))
	}

	var out []domain.Competition
	rl, err := c.get(ctx, "competitions", "competitions", q, &out)
	if err != nil {
		return nil, rl, err
	}

	return out, rl, nil
}

// Teams lists the teams of a competition.
func (c *Client) Teams(ctx context.Context,
	id domain.CompetitionID) (*domain.TeamList, footballapi.RateLimitStatus, error) {
	var w wireTeamList
	rl, err := c.get(ctx, "teams", "competitions/"+id.String()+"/teams", nil, &w)
	if err != nil {
		return nil, rl, err
	}

	return w.toDomain(), rl, nil
}

// Table returns the competition's table, optionally as of matchday.
func (c *Client) Table(ctx context.Context,
	id domain.CompetitionID,
	matchday int) (*domain.LeagueTable, footballapi.RateLimitStatus, error) {
	if matchday < 0 {
		return nil, footballapi.RateLimitStatus{}, serrors.With(serrors.ErrBadRequest, "matchday is invalid")
	}
	q := url.Values{}
	if matchday > 0 {
		q.Set("matchday", strconv.Itoa(matchday))
	}

	var w wireLeagueTable
	rl, err := c.get(ctx, "table", "competitions/"+id.String()+"/leagueTable", q, &w)
	if err != nil {
		return nil, rl, err
	}

	return w.toDomain(), rl, nil
}

// CompetitionFixtures lists the fixtures of a competition.
func (c *Client) CompetitionFixtures(ctx context.Context,
	id domain.CompetitionID,
	q footballapi.CompetitionFixturesQuery) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
	if err := q.Validate(); err != nil {
		return nil, footballapi.RateLimitStatus{}, err
	}

	var w wireFixtureList
	rl, err := c.get(ctx, "competition_fixtures", "competitions/"+id.String()+"/fixtures", q.Values(), &w)
	if err != nil {
		return nil, rl, err
	}

	return w.toDomain(), rl, nil
}

// Fixtures lists fixtures across all competitions.
func (c *Client) Fixtures(ctx context.Context,
	q footballapi.FixturesQuery) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
	if err := q.Validate(); err != nil {
		return nil, footballapi.RateLimitStatus{}, err
	}

	var w wireFixtureList
	rl, err := c.get(ctx, "fixtures", "fixtures", q.Values(), &w)
	if err != nil {
		return nil, rl, err
	}

	return w.toDomain(), rl, nil
}

// Fixture returns a single fixture with its head to head record.
func (c *Client) Fixture(ctx context.Context,
	id domain.FixtureID) (*domain.FixtureDetails, footballapi.RateLimitStatus, error) {
	var w wireFixtureDetails
	rl, err := c.get(ctx, "fixture", "fixtures/"+id.String(), nil, &w)
	if err != nil {
		return nil, rl, err
	}

	return w.toDomain(), rl, nil
}

// TeamFixtures lists the fixtures of a team.
func (c *Client) TeamFixtures(ctx context.Context,
	id domain.TeamID,
	q footballapi.TeamFixturesQuery) (*domain.FixtureList, footballapi.RateLimitStatus, error) {
	if err := q.Validate(); err != nil {
		return nil, footballapi.RateLimitStatus{}, err
	}

	var w wireFixtureList
	rl, err := c.get(ctx, "team_fixtures", "teams/"+id.String()+"/fixtures", q.Values(), &w)
	if err != nil {
		return nil, rl, err
	}

	return w.toDomain(), rl, nil
}

// Team returns a team's base data.
func (c *Client) Team(ctx context.Context, id domain.TeamID) (*domain.Team, footballapi.RateLimitStatus, error) {
	var w wireTeam
	rl, err := c.get(ctx, "team", "teams/"+id.String(), nil, &w)
	if err != nil {
		return nil, rl, err
	}
	t := w.toDomain()
	if t.ID == 0 {
		t.ID = id
	}

	return &t, rl, nil
}

// Players returns a team's squad.
func (c *Client) Players(ctx context.Context,
	id domain.TeamID) (*domain.PlayerList, footballapi.RateLimitStatus, error) {
	var out domain.PlayerList
	rl, err := c.get(ctx, "players", "teams/"+id.String()+"/players", nil, &out)
	if err != nil {
		return nil, rl, err
	}
	if out.Players == nil {
		out.Players = []domain.Player{}
	}

	return &out, rl, nil
}
