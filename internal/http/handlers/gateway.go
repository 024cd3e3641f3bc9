package handlers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/gateway"
	"github.com/preston-bernstein/nba-recipes-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
)

const forwardFailed = "Error forwarding the request"

// Downstream is the part of the gateway client the composite routes use.
type Downstream interface {
	Team(ctx context.Context, identifier string) (teams.Team, error)
	Player(ctx context.Context, identifier string) (players.Player, error)
	Recipes(ctx context.Context) ([]recipes.Recipe, error)
	NBAStatus(ctx context.Context) (json.RawMessage, error)
	RecipesStatus(ctx context.Context) (json.RawMessage, error)
}

// GatewayHandler proxies to the NBA and recipes services and serves the composite routes.
type GatewayHandler struct {
	client       Downstream
	nbaProxy     http.Handler
	recipesProxy http.Handler
	logger       *slog.Logger
	pick         func(n int) int
}

type teamRecipe struct {
	Team   teams.Team      `json:"team"`
	Recipe *recipes.Recipe `json:"recipe"`
}

type playerRecipe struct {
	Player players.Player  `json:"player"`
	Recipe *recipes.Recipe `json:"recipe"`
}

type servicesStatus struct {
	NBAService     json.RawMessage `json:"nbaService"`
	RecipesService json.RawMessage `json:"recipesService"`
}

// NewGatewayHandler builds reverse proxies for both downstream base URLs.
func NewGatewayHandler(client Downstream, nbaURL, recipesURL *url.URL, logger *slog.Logger) *GatewayHandler {
	h := &GatewayHandler{
		client: client,
		logger: logger,
		pick:   rand.IntN,
	}
	h.nbaProxy = h.newProxy("nba", nbaURL)
	h.recipesProxy = h.newProxy("recipes", recipesURL)
	return h
}

func (h *GatewayHandler) newProxy(prefix string, target *url.URL) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		if reqID := requestID(req); reqID != "" {
			req.Header.Set(requestutil.HeaderRequestID, reqID)
		}
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logging.Warn(loggerFromContext(r, h.logger), "proxy request failed", logging.FieldError, err, "target", target.String())
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"message": forwardFailed,
			"error":   err.Error(),
		}, h.logger)
	}
	return http.StripPrefix("/"+prefix, proxy)
}

// NBAProxy forwards /nba/* to the NBA service.
func (h *GatewayHandler) NBAProxy() http.Handler { return h.nbaProxy }

// RecipesProxy forwards /recipes/* to the recipes service.
func (h *GatewayHandler) RecipesProxy() http.Handler { return h.recipesProxy }

// Status reports the gateway is up.
func (h *GatewayHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gateway is running"}, h.logger)
}

// ServicesStatus returns both downstream /status bodies.
func (h *GatewayHandler) ServicesStatus(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	nba, err := h.client.NBAStatus(r.Context())
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	rec, err := h.client.RecipesStatus(r.Context())
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, servicesStatus{NBAService: nba, RecipesService: rec}, h.logger)
}

// RecipeByTeam pairs a team with a random recipe.
func (h *GatewayHandler) RecipeByTeam(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	team, err := h.client.Team(r.Context(), r.PathValue("identifier"))
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	all, err := h.client.Recipes(r.Context())
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teamRecipe{Team: team, Recipe: h.random(all)}, h.logger)
}

// RecipeByPlayer pairs a player with a random recipe.
func (h *GatewayHandler) RecipeByPlayer(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	player, err := h.client.Player(r.Context(), r.PathValue("identifier"))
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	all, err := h.client.Recipes(r.Context())
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, playerRecipe{Player: player, Recipe: h.random(all)}, h.logger)
}

// RecipeStartingWithTeam pairs a team with the first recipe sharing its initial.
func (h *GatewayHandler) RecipeStartingWithTeam(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	team, err := h.client.Team(r.Context(), r.PathValue("identifier"))
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}
	first, _ := utf8.DecodeRuneInString(team.Name)
	if team.Name == "" || first == utf8.RuneError {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Team not found"}, h.logger)
		return
	}
	all, err := h.client.Recipes(r.Context())
	if err != nil {
		h.writeForwardError(w, r, err)
		return
	}

	letter := strings.ToUpper(string(first))
	for i := range all {
		if strings.HasPrefix(all[i].Name, letter) {
			writeJSON(w, http.StatusOK, teamRecipe{Team: team, Recipe: &all[i]}, h.logger)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{
		"message": "No recipe found starting with the letter " + letter,
	}, h.logger)
}

func (h *GatewayHandler) random(all []recipes.Recipe) *recipes.Recipe {
	if len(all) == 0 {
		return nil
	}
	return &all[h.pick(len(all))]
}

// writeForwardError passes a downstream status through; an unreachable downstream is a 502.
func (h *GatewayHandler) writeForwardError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)

	var downErr *gateway.DownstreamError
	if errors.As(err, &downErr) {
		logging.Warn(logger, "downstream rejected request", "service", downErr.Service, logging.FieldStatusCode, downErr.StatusCode)
		var detail any = string(downErr.Body)
		if json.Valid(downErr.Body) {
			detail = json.RawMessage(downErr.Body)
		}
		writeJSON(w, downErr.StatusCode, map[string]any{"message": forwardFailed, "error": detail}, h.logger)
		return
	}

	logging.Error(logger, "downstream request failed", err)
	writeJSON(w, http.StatusBadGateway, map[string]string{"message": forwardFailed, "error": err.Error()}, h.logger)
}
