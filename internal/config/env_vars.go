package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	portEnvVar       = "PORT"
	appNameVar       = "APP_NAME"
	appVersionVar    = "APP_VERSION"
	folderEnvVar     = "FOLDER"
	logLevelVar      = "LOG_LEVEL"
	apiBaseURLVar    = "BLOG_API_BASE_URL"
	httpTimeoutVar   = "HTTP_TIMEOUT"
	frontendURLVar   = "FRONTEND_URL"
	tokenFileName    = "tokens.json"
	defaultAPIURL    = "http://localhost:5000/api"
	defaultTimeout   = 15 * time.Second
	defaultLogLevel  = "info"
	defaultDataDir   = "./data"
	defaultAppName   = "BlogSite"
	defaultAppVer    = "1.0.0"
	defaultPort      = "5000"
	defaultFrontend  = "http://localhost:3000"
	developmentValue = "DEV"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, defaultPort)
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, defaultAppName)
}

func (EnvVars) GetAppVersion() string {
	return GetEnv(appVersionVar, defaultAppVer)
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, defaultDataDir)
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, defaultLogLevel)
}

// GetFrontendURL is the site emailed verification and reset links point at.
func (EnvVars) GetFrontendURL() string {
	return strings.TrimRight(GetEnv(frontendURLVar, defaultFrontend), "/")
}

func (EnvVars) GetEnv() string {
	return GetEnv("ENV", developmentValue)
}

type Client struct{}

var _ ClientConfig = Client{}

// GetAPIBaseURL returns the API root, e.g. "http://localhost:5000/api", with no trailing slash.
func (Client) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiBaseURLVar, defaultAPIURL), "/")
}

func (Client) GetHTTPTimeout() time.Duration {
	return GetDuration(httpTimeoutVar, defaultTimeout)
}

// GetTokenFile is where the durable session tokens are kept.
func (Client) GetTokenFile() string {
	return filepath.Join(EnvVars{}.GetDataFolder(), tokenFileName)
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetDuration parses envVar with time.ParseDuration, falling back to defaultValue when unset or malformed.
func GetDuration(envVar string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
