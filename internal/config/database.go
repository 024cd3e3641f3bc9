package config

import "github.com/knadh/koanf/v2"

// DatabaseConfig selects the relational backend. For sqlite the DSN is a file path.
type DatabaseConfig struct {
	Driver string `validate:"required,oneof=sqlite postgres"`
	DSN    string `validate:"required"`
}

func loadDatabase(k *koanf.Koanf, defaultDSN string) *DatabaseConfig {
	return &DatabaseConfig{
		Driver: stringOrDefault(k, envDBDriver, defaultDBDriver),
		DSN:    stringOrDefault(k, envDBDSN, defaultDSN),
	}
}
