package config

import "github.com/knadh/koanf/v2"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string `validate:"required,numeric"`
	OtlpEndpoint string
	ServiceName  string `validate:"required"`
	OtlpInsecure bool
}

func loadMetrics(k *koanf.Koanf, d serviceDefaults) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolOrDefault(k, envMetricsOn, defaultMetricsOn),
		Port:         stringOrDefault(k, envMetricsPort, d.metricsPort),
		OtlpEndpoint: stringOrDefault(k, envOtelEndpoint, ""),
		ServiceName:  stringOrDefault(k, envOtelService, d.serviceName),
		OtlpInsecure: boolOrDefault(k, envOtelInsecure, true),
	}
}
