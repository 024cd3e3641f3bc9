package rapidapi

import "time"

const (
	providerName       = "rapidapi"
	defaultBaseURL     = "https://api-nba-v1.p.rapidapi.com"
	defaultHost        = "api-nba-v1.p.rapidapi.com"
	defaultHTTPTimeout = 10 * time.Second
	defaultTeam        = 1
	defaultSeason      = 2021
	maxErrorBody       = 512

	headerKey  = "X-RapidAPI-Key"
	headerHost = "X-RapidAPI-Host"
)
