package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Service names the process being configured; it selects defaults and which blocks are populated.
type Service string

const (
	ServiceNBA     Service = "nba"
	ServiceRecipes Service = "recipes"
	ServiceGateway Service = "gateway"
)

// Config holds runtime configuration for one service.
// Database is set for the nba and recipes services, Upstream for nba, Gateway for gateway.
type Config struct {
	Service      Service `validate:"required,oneof=nba recipes gateway"`
	Port         string  `validate:"required,numeric"`
	Log          LogConfig
	Metrics      MetricsConfig
	Database     *DatabaseConfig
	Upstream     *UpstreamConfig
	Gateway      *GatewayConfig
	WarmInterval Duration `validate:"gte=0"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `validate:"required,oneof=debug info warn error"`
	Format string `validate:"required,oneof=text json"`
}

var validate = validator.New()

// Load reads configuration from environment variables with per-service defaults and validates the result.
func Load(svc Service) (Config, error) {
	d, ok := defaults[svc]
	if !ok {
		return Config{}, fmt.Errorf("config: unknown service %q", svc)
	}

	k, err := loadEnv()
	if err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	cfg := Config{
		Service: svc,
		Port:    stringOrDefault(k, envPort, d.port),
		Log: LogConfig{
			Level:  stringOrDefault(k, envLogLevel, defaultLogLevel),
			Format: stringOrDefault(k, envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(k, d),
	}

	switch svc {
	case ServiceNBA:
		cfg.Database = loadDatabase(k, d.dsn)
		cfg.Upstream = loadUpstream(k)
		cfg.WarmInterval = durationOrDefault(k, envWarmInterval, 0)
	case ServiceRecipes:
		cfg.Database = loadDatabase(k, d.dsn)
	case ServiceGateway:
		cfg.Gateway = loadGateway(k)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct tags on the whole tree.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
