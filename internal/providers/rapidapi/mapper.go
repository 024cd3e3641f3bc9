package rapidapi

import (
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:       t.ID,
		Name:     t.Name,
		City:     orUnknown(t.City),
		Nickname: orUnknown(t.Nickname),
	}
}

func mapPlayer(p playerResponse) players.Player {
	player := players.Player{
		ID:   p.ID,
		Name: p.FirstName + " " + p.LastName,
	}
	if p.Height != nil {
		player.Height = p.Height.Meters.value
	}
	if p.Weight != nil {
		player.Weight = p.Weight.Kilograms.value
	}
	return player
}

func orUnknown(v *string) string {
	if v == nil {
		return teams.Unknown
	}
	return *v
}
