package config

import "time"

type Config interface {
	EnvConfig
	ClientConfig
	CorsConfig
	TokenConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetAppVersion() string
	GetDataFolder() string
	GetLogLevel() string
	GetEnv() string
	GetFrontendURL() string
}

// ClientConfig holds the settings the API client needs to reach the blog API.
type ClientConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeout() time.Duration
	GetTokenFile() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Client
	Cors
	Tokens
}

func New() Config {
	return mainConfig{}
}
