package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-recipes-service/internal/http/handlers"
)

// NewNBARouter registers the NBA data routes on a ServeMux.
func NewNBARouter(h *handlers.NBAHandler, logger *slog.Logger) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/status", h.Status)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/getAllPlayers", h.GetAllPlayers)
	mux.HandleFunc("/getTeamsInfo", h.GetTeamsInfo)
	mux.HandleFunc("/getTeamInfo/{identifier...}", h.GetTeamInfo)
	mux.HandleFunc("/getPlayerInfo/{identifier...}", h.GetPlayerInfo)
	mux.Handle("/", handlers.NotFound(logger))
	return mux
}

// NewRecipesRouter registers the recipe routes on a ServeMux.
func NewRecipesRouter(h *handlers.RecipesHandler, logger *slog.Logger) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/status", h.Status)
	mux.HandleFunc("/addRecipes", h.AddRecipes)
	mux.HandleFunc("/getRecipes", h.GetRecipes)
	mux.HandleFunc("/getRecipe/{id}", h.GetRecipe)
	mux.HandleFunc("/removeRecipe/{id}", h.RemoveRecipe)
	mux.Handle("/", handlers.NotFound(logger))
	return mux
}

// NewGatewayRouter registers the proxy and composite routes on a ServeMux.
func NewGatewayRouter(h *handlers.GatewayHandler, logger *slog.Logger) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.Handle("/nba/", h.NBAProxy())
	mux.Handle("/recipes/", h.RecipesProxy())
	mux.HandleFunc("/status", h.Status)
	mux.HandleFunc("/services-status", h.ServicesStatus)
	mux.HandleFunc("/recipe-by-team/{identifier...}", h.RecipeByTeam)
	mux.HandleFunc("/recipe-by-player/{identifier...}", h.RecipeByPlayer)
	mux.HandleFunc("/recipe-starting-with-team/{identifier...}", h.RecipeStartingWithTeam)
	mux.Handle("/", handlers.NotFound(logger))
	return mux
}
