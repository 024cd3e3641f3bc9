package testutil

import (
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
)

// SampleTeams returns a small team list with distinct ids and names.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Atlanta Hawks", City: "Atlanta", Nickname: "Hawks"},
		{ID: 2, Name: "Boston Celtics", City: "Boston", Nickname: "Celtics"},
		{ID: 17, Name: "Los Angeles Lakers", City: "Los Angeles", Nickname: "Lakers"},
	}
}

// SamplePlayers returns a small roster; the last player has no measurements.
func SamplePlayers() []players.Player {
	height, weight := "1.85", "74.4"
	return []players.Player{
		{ID: 56, Name: "Trae Young", Height: &height, Weight: &weight},
		{ID: 101, Name: "Clint Capela"},
	}
}

// SampleRecipe returns a recipe input with every field set.
func SampleRecipe(name string) recipes.Input {
	ingredients, instructions := "flour, eggs, milk", "mix and cook"
	return recipes.Input{Name: &name, Ingredients: &ingredients, Instructions: &instructions}
}
