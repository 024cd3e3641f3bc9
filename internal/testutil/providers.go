package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

// StubProvider returns canned teams and players, or Err, and counts calls.
type StubProvider struct {
	Teams   []teams.Team
	Players []players.Player
	Err     error

	mu          sync.Mutex
	teamCalls   int
	playerCalls int
}

func (p *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	p.mu.Lock()
	p.teamCalls++
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Teams, nil
}

func (p *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	p.mu.Lock()
	p.playerCalls++
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Players, nil
}

// TeamCalls returns how many times FetchTeams ran.
func (p *StubProvider) TeamCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.teamCalls
}

// PlayerCalls returns how many times FetchPlayers ran.
func (p *StubProvider) PlayerCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playerCalls
}

// NotifyingProvider returns sample data and closes Notify on the first team fetch.
type NotifyingProvider struct {
	StubProvider
	Notify chan struct{}
	once   sync.Once
}

func (p *NotifyingProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	items, err := p.StubProvider.FetchTeams(ctx)
	if p.Notify != nil {
		p.once.Do(func() { close(p.Notify) })
	}
	return items, err
}
