package rapidapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers"
)

// Config controls how the client reaches api-nba on RapidAPI.
type Config struct {
	BaseURL    string
	Host       string
	APIKey     string
	Team       int
	Season     int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches teams and players from api-nba and maps them to domain models.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	team       int
	season     int
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		host:       host,
		apiKey:     cfg.APIKey,
		team:       orDefault(cfg.Team, defaultTeam),
		season:     orDefault(cfg.Season, defaultSeason),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchTeams retrieves the full team list.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload envelope[teamResponse]
	if err := c.get(ctx, "/teams", nil, &payload); err != nil {
		return nil, err
	}
	if payload.Response == nil {
		return nil, providers.ErrInvalidFormat
	}
	out := make([]teams.Team, 0, len(*payload.Response))
	for _, t := range *payload.Response {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// FetchPlayers retrieves the configured team/season roster.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	q := url.Values{}
	q.Set("team", strconv.Itoa(c.team))
	q.Set("season", strconv.Itoa(c.season))

	var payload envelope[playerResponse]
	if err := c.get(ctx, "/players", q, &payload); err != nil {
		return nil, err
	}
	if payload.Response == nil {
		return nil, providers.ErrInvalidFormat
	}
	out := make([]players.Player, 0, len(*payload.Response))
	for _, p := range *payload.Response {
		out = append(out, mapPlayer(p))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rapidapi: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "API request failed",
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("rapidapi: decode %s: %w (%v)", path, providers.ErrInvalidFormat, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set(headerHost, c.host)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
