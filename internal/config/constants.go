package config

import "time"

const (
	envPort           = "PORT"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envDBDriver       = "DB_DRIVER"
	envDBDSN          = "DB_DSN"
	envUpstream       = "UPSTREAM_PROVIDER"
	envRapidBaseURL   = "RAPIDAPI_BASE_URL"
	envRapidHost      = "RAPIDAPI_HOST"
	envRapidKey       = "RAPIDAPI_KEY"
	envRapidTimeout   = "RAPIDAPI_TIMEOUT"
	envPlayersTeam    = "PLAYERS_TEAM"
	envPlayersSeason  = "PLAYERS_SEASON"
	envErrorMode      = "UPSTREAM_ERROR_MODE"
	envWarmInterval   = "WARM_INTERVAL"
	envNBAServiceURL  = "NBA_SERVICE_URL"
	envRecipesURL     = "RECIPES_SERVICE_URL"
	envGatewayTimeout = "GATEWAY_TIMEOUT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultDBDriver   = DriverSQLite
	defaultUpstream   = ProviderRapidAPI
	defaultRapidURL   = "https://api-nba-v1.p.rapidapi.com"
	defaultRapidHost  = "api-nba-v1.p.rapidapi.com"
	defaultRapidTO    = 10 * Duration(time.Second)
	defaultTeam       = 1
	defaultSeason     = 2021
	defaultErrorMode  = ErrorModeBody
	defaultNBAURL     = "http://localhost:5000"
	defaultRecipesURL = "http://localhost:5001"
	defaultGatewayTO  = 10 * Duration(time.Second)
	defaultMetricsOn  = true
)

// Values accepted by the enumerated settings.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ProviderRapidAPI = "rapidapi"
	ProviderFixture  = "fixture"

	// ErrorModeBody answers upstream failures with 200 and an error field.
	ErrorModeBody = "body"
	// ErrorModeStatus answers upstream failures with 502.
	ErrorModeStatus = "status"
)

// knownKeys limits what the env provider pulls into koanf.
var knownKeys = map[string]struct{}{
	envPort: {}, envLogLevel: {}, envLogFormat: {}, envDBDriver: {}, envDBDSN: {},
	envUpstream: {}, envRapidBaseURL: {}, envRapidHost: {}, envRapidKey: {}, envRapidTimeout: {},
	envPlayersTeam: {}, envPlayersSeason: {}, envErrorMode: {}, envWarmInterval: {},
	envNBAServiceURL: {}, envRecipesURL: {}, envGatewayTimeout: {},
	envMetricsPort: {}, envMetricsOn: {}, envOtelEndpoint: {}, envOtelService: {}, envOtelInsecure: {},
}

type serviceDefaults struct {
	port        string
	dsn         string
	metricsPort string
	serviceName string
}

var defaults = map[Service]serviceDefaults{
	ServiceNBA:     {port: "5000", dsn: "mydatabase.db", metricsPort: "9090", serviceName: "nba-service"},
	ServiceRecipes: {port: "5001", dsn: "recipes.db", metricsPort: "9091", serviceName: "recipes-service"},
	ServiceGateway: {port: "3000", metricsPort: "9092", serviceName: "gateway"},
}
