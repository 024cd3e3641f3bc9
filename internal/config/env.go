package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// loadEnv reads the recognised environment variables into a flat koanf tree.
func loadEnv() (*koanf.Koanf, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(key string) string {
		if _, ok := knownKeys[key]; ok {
			return key
		}
		return ""
	}), nil)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func stringOrDefault(k *koanf.Koanf, key, defaultValue string) string {
	if val := strings.TrimSpace(k.String(key)); val != "" {
		return val
	}
	return defaultValue
}

func durationOrDefault(k *koanf.Koanf, key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(k.String(key))
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func intOrDefault(k *koanf.Koanf, key string, defaultValue int) int {
	raw := strings.TrimSpace(k.String(key))
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func boolOrDefault(k *koanf.Koanf, key string, defaultValue bool) bool {
	raw := strings.TrimSpace(k.String(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
