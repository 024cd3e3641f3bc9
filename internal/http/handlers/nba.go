package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-recipes-service/internal/config"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/poller"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers"
	"github.com/preston-bernstein/nba-recipes-service/internal/store"
)

// TeamService is the part of the team service the handlers use.
type TeamService interface {
	Sync(ctx context.Context) ([]teams.Team, error)
	Lookup(ctx context.Context, ident domain.Identifier) (teams.Team, error)
}

// PlayerService is the part of the player service the handlers use.
type PlayerService interface {
	Sync(ctx context.Context) ([]players.Player, error)
	Lookup(ctx context.Context, ident domain.Identifier) (players.Player, error)
}

// NBAHandler serves the NBA data routes.
type NBAHandler struct {
	teams     TeamService
	players   PlayerService
	errorMode string
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewNBAHandler constructs an NBAHandler. statusFn is nil when the cache warmer is disabled.
func NewNBAHandler(teamSvc TeamService, playerSvc PlayerService, errorMode string, logger *slog.Logger, statusFn func() poller.Status) *NBAHandler {
	if errorMode == "" {
		errorMode = config.ErrorModeBody
	}
	return &NBAHandler{
		teams:     teamSvc,
		players:   playerSvc,
		errorMode: errorMode,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Status reports the service is up.
func (h *NBAHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "Service is up and running"}, h.logger)
}

// Ready reports readiness for traffic. Without a warmer the service is always ready.
func (h *NBAHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// GetAllPlayers refreshes the player cache from upstream and returns every stored player.
func (h *NBAHandler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	all, err := h.players.Sync(r.Context())
	if err != nil {
		h.writeSyncError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all, h.logger)
}

// GetTeamsInfo refreshes the team cache from upstream and returns every stored team.
func (h *NBAHandler) GetTeamsInfo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	all, err := h.teams.Sync(r.Context())
	if err != nil {
		h.writeSyncError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all, h.logger)
}

// GetTeamInfo looks a cached team up by id or name.
func (h *NBAHandler) GetTeamInfo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	team, err := h.teams.Lookup(r.Context(), domain.ParseIdentifier(r.PathValue("identifier")))
	if err != nil {
		h.writeLookupError(w, r, err, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

// GetPlayerInfo looks a cached player up by id or name.
func (h *NBAHandler) GetPlayerInfo(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodGet) {
		return
	}
	player, err := h.players.Lookup(r.Context(), domain.ParseIdentifier(r.PathValue("identifier")))
	if err != nil {
		h.writeLookupError(w, r, err, "Player not found")
		return
	}
	writeJSON(w, http.StatusOK, player, h.logger)
}

func (h *NBAHandler) writeLookupError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, notFound, h.logger)
		return
	}
	logging.Error(loggerFromContext(r, h.logger), "lookup failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
}

// writeSyncError maps a Sync failure onto a response. Upstream answers that were received but
// unusable follow the configured error mode; anything else is a gateway or server error.
func (h *NBAHandler) writeSyncError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)

	if errors.Is(err, providers.ErrProviderUnavailable) {
		writeError(w, r, http.StatusServiceUnavailable, "upstream provider unavailable", h.logger)
		return
	}
	if _, ok := providers.AsUpstreamError(err); !ok {
		logging.Error(logger, "sync failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
		return
	}

	logging.Warn(logger, "upstream fetch failed", logging.FieldError, err)
	if errors.Is(err, providers.ErrInvalidFormat) {
		writeError(w, r, h.upstreamStatus(), "Invalid API response format", h.logger)
		return
	}
	if statusErr, ok := providers.AsStatusError(err); ok {
		writeError(w, r, h.upstreamStatus(), fmt.Sprintf("API request failed with status %d", statusErr.StatusCode), h.logger)
		return
	}
	writeError(w, r, http.StatusBadGateway, "upstream request failed", h.logger)
}

func (h *NBAHandler) upstreamStatus() int {
	if h.errorMode == config.ErrorModeStatus {
		return http.StatusBadGateway
	}
	return http.StatusOK
}
