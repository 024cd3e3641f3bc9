package config

import "github.com/knadh/koanf/v2"

// GatewayConfig points the gateway at the two downstream services.
type GatewayConfig struct {
	NBAServiceURL     string   `validate:"required,url"`
	RecipesServiceURL string   `validate:"required,url"`
	Timeout           Duration `validate:"gt=0"`
}

func loadGateway(k *koanf.Koanf) *GatewayConfig {
	return &GatewayConfig{
		NBAServiceURL:     stringOrDefault(k, envNBAServiceURL, defaultNBAURL),
		RecipesServiceURL: stringOrDefault(k, envRecipesURL, defaultRecipesURL),
		Timeout:           durationOrDefault(k, envGatewayTimeout, defaultGatewayTO),
	}
}
