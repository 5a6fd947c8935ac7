package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-text-extractor/internal/domain"
)

const defaultHealthCheckURL = "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"

// AppConfig implements the domain.Config interface
type AppConfig struct {
	Host                string
	ServerPort          string
	Debug               bool
	LogLevel            string
	MaxFileSize         int64
	HealthCheckURL      string
	HealthCheckInterval time.Duration
	HealthCheckTimeout  time.Duration
	AllowedOrigins      []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	debug := getEnvBoolOrDefault("DEBUG", false)
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")
	if debug {
		logLevel = "debug"
	}

	return &AppConfig{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:          getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "5000")),
		Debug:               debug,
		LogLevel:            logLevel,
		MaxFileSize:         getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		HealthCheckURL:      getEnvOrDefault("HEALTH_CHECK_URL", defaultHealthCheckURL),
		HealthCheckInterval: getEnvDurationOrDefault("HEALTH_CHECK_INTERVAL", 300*time.Second),
		HealthCheckTimeout:  getEnvDurationOrDefault("HEALTH_CHECK_TIMEOUT", 10*time.Second),
		AllowedOrigins:      getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// GetHost returns the interface the server binds to
func (c *AppConfig) GetHost() string {
	return c.Host
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetAddress returns the host:port listen address
func (c *AppConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, c.ServerPort)
}

// IsDebug reports whether verbose debug mode is on
func (c *AppConfig) IsDebug() bool {
	return c.Debug
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed download size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetHealthCheckURL returns the URL probed by the health monitor
func (c *AppConfig) GetHealthCheckURL() string {
	return c.HealthCheckURL
}

// GetHealthCheckInterval returns the period between probes
func (c *AppConfig) GetHealthCheckInterval() time.Duration {
	return c.HealthCheckInterval
}

// GetHealthCheckTimeout returns the timeout applied to each probe
func (c *AppConfig) GetHealthCheckTimeout() time.Duration {
	return c.HealthCheckTimeout
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("5m") or plain seconds ("300")
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
