package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-recipes-service/internal/config"
	"github.com/preston-bernstein/nba-recipes-service/internal/logging"
	"github.com/preston-bernstein/nba-recipes-service/internal/metrics"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-recipes-service/internal/providers/rapidapi"
)

// providerFactory assembles the upstream provider with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg *config.UpstreamConfig) providers.DataProvider {
	if cfg == nil {
		return nil
	}
	name := cfg.Provider
	var base providers.DataProvider
	switch cfg.Provider {
	case config.ProviderFixture:
		base = fixture.New()
	case config.ProviderRapidAPI:
		if cfg.APIKey == "" {
			logging.Warn(f.logger, "RAPIDAPI_KEY is empty, upstream calls will be rejected", logging.FieldProvider, name)
		}
		base = rapidapi.NewClient(rapidapi.Config{
			BaseURL: cfg.BaseURL,
			Host:    cfg.Host,
			APIKey:  cfg.APIKey,
			Team:    cfg.PlayersTeam,
			Season:  cfg.PlayersSeason,
			Timeout: cfg.Timeout,
		})
	default:
		logging.Warn(f.logger, "unknown provider, falling back to fixture", logging.FieldProvider, name)
		name = config.ProviderFixture
		base = fixture.New()
	}
	return providers.NewInstrumentedProvider(base, name, f.metrics, f.logger)
}
