package config

import "github.com/knadh/koanf/v2"

// UpstreamConfig controls how we talk to the RapidAPI NBA API.
type UpstreamConfig struct {
	Provider string `validate:"required,oneof=rapidapi fixture"`
	BaseURL  string `validate:"required,url"`
	Host     string `validate:"required"`
	APIKey   string
	Timeout  Duration `validate:"gt=0"`

	// PlayersTeam and PlayersSeason pin the slice requested by GetAllPlayers.
	PlayersTeam   int    `validate:"gt=0"`
	PlayersSeason int    `validate:"gt=0"`
	ErrorMode     string `validate:"required,oneof=body status"`
}

func loadUpstream(k *koanf.Koanf) *UpstreamConfig {
	return &UpstreamConfig{
		Provider:      stringOrDefault(k, envUpstream, defaultUpstream),
		BaseURL:       stringOrDefault(k, envRapidBaseURL, defaultRapidURL),
		Host:          stringOrDefault(k, envRapidHost, defaultRapidHost),
		APIKey:        stringOrDefault(k, envRapidKey, ""),
		Timeout:       durationOrDefault(k, envRapidTimeout, defaultRapidTO),
		PlayersTeam:   intOrDefault(k, envPlayersTeam, defaultTeam),
		PlayersSeason: intOrDefault(k, envPlayersSeason, defaultSeason),
		ErrorMode:     stringOrDefault(k, envErrorMode, defaultErrorMode),
	}
}
