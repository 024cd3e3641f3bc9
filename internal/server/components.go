package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"gorm.io/gorm"

	appplayers "github.com/preston-bernstein/nba-recipes-service/internal/app/players"
	apprecipes "github.com/preston-bernstein/nba-recipes-service/internal/app/recipes"
	appteams "github.com/preston-bernstein/nba-recipes-service/internal/app/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/config"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/players"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/recipes"
	"github.com/preston-bernstein/nba-recipes-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-recipes-service/internal/gateway"
	httpserver "github.com/preston-bernstein/nba-recipes-service/internal/http"
	"github.com/preston-bernstein/nba-recipes-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-recipes-service/internal/metrics"
	"github.com/preston-bernstein/nba-recipes-service/internal/poller"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers"
	"github.com/preston-bernstein/nba-recipes-service/internal/store"
)

// components is what one service contributes to a Server. db and warmer may be nil.
type components struct {
	router http.Handler
	db     *gorm.DB
	warmer Poller
}

func buildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider) (components, error) {
	switch cfg.Service {
	case config.ServiceNBA:
		return buildNBA(cfg, logger, recorder, provider)
	case config.ServiceRecipes:
		return buildRecipes(cfg, logger)
	case config.ServiceGateway:
		return buildGateway(cfg, logger)
	default:
		return components{}, fmt.Errorf("server: unknown service %q", cfg.Service)
	}
}

func buildNBA(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.DataProvider) (components, error) {
	if cfg.Database == nil || cfg.Upstream == nil {
		return components{}, errors.New("server: nba service needs database and upstream config")
	}
	db, err := store.Open(*cfg.Database, logger, &players.Player{}, &teams.Team{})
	if err != nil {
		return components{}, err
	}

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg.Upstream)
	}
	teamSvc := appteams.NewService(store.NewTable[teams.Team](db), provider, recorder, logger)
	playerSvc := appplayers.NewService(store.NewTable[players.Player](db), provider, recorder, logger)

	warmer := buildWarmer(cfg.WarmInterval, []poller.Job{
		syncJob[teams.Team]("teams", teamSvc),
		syncJob[players.Player]("players", playerSvc),
	}, logger, recorder)

	var statusFn func() poller.Status
	if warmer != nil {
		statusFn = warmer.Status
	}
	h := handlers.NewNBAHandler(teamSvc, playerSvc, cfg.Upstream.ErrorMode, logger, statusFn)
	return components{router: httpserver.NewNBARouter(h, logger), db: db, warmer: warmer}, nil
}

func buildRecipes(cfg config.Config, logger *slog.Logger) (components, error) {
	if cfg.Database == nil {
		return components{}, errors.New("server: recipes service needs database config")
	}
	db, err := store.Open(*cfg.Database, logger, &recipes.Recipe{})
	if err != nil {
		return components{}, err
	}
	svc := apprecipes.NewService(store.NewTable[recipes.Recipe](db), logger)
	h := handlers.NewRecipesHandler(svc, logger)
	return components{router: httpserver.NewRecipesRouter(h, logger), db: db}, nil
}

func buildGateway(cfg config.Config, logger *slog.Logger) (components, error) {
	if cfg.Gateway == nil {
		return components{}, errors.New("server: gateway needs downstream config")
	}
	nbaURL, err := url.Parse(cfg.Gateway.NBAServiceURL)
	if err != nil {
		return components{}, fmt.Errorf("server: nba service url: %w", err)
	}
	recipesURL, err := url.Parse(cfg.Gateway.RecipesServiceURL)
	if err != nil {
		return components{}, fmt.Errorf("server: recipes service url: %w", err)
	}

	client := gateway.NewClient(gateway.Config{
		NBABaseURL:     cfg.Gateway.NBAServiceURL,
		RecipesBaseURL: cfg.Gateway.RecipesServiceURL,
		Timeout:        cfg.Gateway.Timeout,
	})
	h := handlers.NewGatewayHandler(client, nbaURL, recipesURL, logger)
	return components{router: httpserver.NewGatewayRouter(h, logger)}, nil
}
