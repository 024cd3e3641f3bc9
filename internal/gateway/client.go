package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 64 << 10

	serviceNBA     = "nba"
	serviceRecipes = "recipes"
)

// Config points the client at the two downstream services.
type Config struct {
	NBABaseURL     string
	RecipesBaseURL string
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// Client calls the NBA and recipes services on behalf of the composite endpoints.
type Client struct {
	nbaURL     string
	recipesURL string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DownstreamError is a non-2xx answer from a downstream service. Body is the raw response body.
type DownstreamError struct {
	Service    string
	StatusCode int
	Body       []byte
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s service responded with status %d", e.Service, e.StatusCode)
}

// NewClient constructs a Client.
func NewClient(cfg Config) *Client {
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		nbaURL:     strings.TrimSuffix(cfg.NBABaseURL, "/"),
		recipesURL: strings.TrimSuffix(cfg.RecipesBaseURL, "/"),
		httpClient: doer,
	}
}

// Team resolves a team id or name through the NBA service.
func (c *Client) Team(ctx context.Context, identifier string) (teams.Team, error) {
	var out teams.Team
	err := c.getJSON(ctx, serviceNBA, c.nbaURL+"/getTeamInfo/"+url.PathEscape(identifier), &out)
	return out, err
}

// Player resolves a player id or name through the NBA service.
func (c *Client) Player(ctx context.Context, identifier string) (players.Player, error) {
	var out players.Player
	err := c.getJSON(ctx, serviceNBA, c.nbaURL+"/getPlayerInfo/"+url.PathEscape(identifier), &out)
	return out, err
}

// Recipes lists every recipe from the recipes service.
func (c *Client) Recipes(ctx context.Context) ([]recipes.Recipe, error) {
	var out []recipes.Recipe
	err := c.getJSON(ctx, serviceRecipes, c.recipesURL+"/getRecipes", &out)
	return out, err
}

// NBAStatus returns the NBA service's /status body unchanged.
func (c *Client) NBAStatus(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.getJSON(ctx, serviceNBA, c.nbaURL+"/status", &out)
	return out, err
}

// RecipesStatus returns the recipes service's /status body unchanged.
func (c *Client) RecipesStatus(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.getJSON(ctx, serviceRecipes, c.recipesURL+"/status", &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, service, target string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s service: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &DownstreamError{Service: service, StatusCode: resp.StatusCode, Body: body}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s service: decode: %w", service, err)
	}
	return nil
}
