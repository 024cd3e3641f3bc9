package providers

import (
	"context"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// PlayerProvider fetches normalized players for the configured team/season slice.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	PlayerProvider
}
