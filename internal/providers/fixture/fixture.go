package fixture

import (
	"context"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

// Provider returns a static set of teams and players useful for local testing and bootstrapping
// without a RapidAPI key.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeams returns a deterministic set of teams. One entry has no nickname upstream.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []teams.Team{
		{ID: 1, Name: "Atlanta Hawks", City: "Atlanta", Nickname: "Hawks"},
		{ID: 2, Name: "Boston Celtics", City: "Boston", Nickname: "Celtics"},
		{ID: 11, Name: "Golden State Warriors", City: "Golden State", Nickname: "Warriors"},
		{ID: 17, Name: "Los Angeles Lakers", City: "Los Angeles", Nickname: "Lakers"},
		{ID: 20, Name: "Miami Heat", City: "Miami", Nickname: "Heat"},
		{ID: 37, Name: "Team Stephen", City: teams.Unknown, Nickname: teams.Unknown},
	}, nil
}

// FetchPlayers returns a deterministic roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []players.Player{
		{ID: 56, Name: "Trae Young", Height: strPtr("1.85"), Weight: strPtr("74.4")},
		{ID: 101, Name: "Clint Capela", Height: strPtr("2.08"), Weight: strPtr("108.9")},
		{ID: 133, Name: "Bogdan Bogdanovic", Height: strPtr("1.98"), Weight: strPtr("99.8")},
		{ID: 3070, Name: "Jalen Johnson"},
	}, nil
}

func strPtr(s string) *string {
	return &s
}
