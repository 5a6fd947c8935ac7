package config

import (
	"testing"
	"time"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HOST", "PORT", "SERVER_PORT", "DEBUG", "LOG_LEVEL", "MAX_FILE_SIZE",
		"HEALTH_CHECK_URL", "HEALTH_CHECK_INTERVAL", "HEALTH_CHECK_TIMEOUT",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetHost() != "0.0.0.0" {
		t.Fatalf("expected default host 0.0.0.0, got %s", cfg.GetHost())
	}
	if cfg.GetServerPort() != "5000" {
		t.Fatalf("expected default server port 5000, got %s", cfg.GetServerPort())
	}
	if cfg.GetAddress() != "0.0.0.0:5000" {
		t.Fatalf("expected default address 0.0.0.0:5000, got %s", cfg.GetAddress())
	}
	if cfg.IsDebug() {
		t.Fatalf("expected debug to be off by default")
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetHealthCheckURL() != defaultHealthCheckURL {
		t.Fatalf("unexpected default health check url %s", cfg.GetHealthCheckURL())
	}
	if cfg.GetHealthCheckInterval() != 300*time.Second {
		t.Fatalf("expected default interval 300s, got %s", cfg.GetHealthCheckInterval())
	}
	if cfg.GetHealthCheckTimeout() != 10*time.Second {
		t.Fatalf("expected default timeout 10s, got %s", cfg.GetHealthCheckTimeout())
	}
	if origins := cfg.GetAllowedOrigins(); len(origins) != 1 || origins[0] != "*" {
		t.Fatalf("expected wildcard origins, got %v", origins)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("HEALTH_CHECK_URL", "http://localhost/probe.pdf")
	t.Setenv("HEALTH_CHECK_INTERVAL", "1m")
	t.Setenv("HEALTH_CHECK_TIMEOUT", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg := NewConfig()

	if cfg.GetAddress() != "127.0.0.1:9090" {
		t.Fatalf("expected address 127.0.0.1:9090, got %s", cfg.GetAddress())
	}
	if cfg.GetLogLevel() != "warn" {
		t.Fatalf("expected log level warn, got %s", cfg.GetLogLevel())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetHealthCheckURL() != "http://localhost/probe.pdf" {
		t.Fatalf("unexpected health check url %s", cfg.GetHealthCheckURL())
	}
	if cfg.GetHealthCheckInterval() != time.Minute {
		t.Fatalf("expected interval 1m, got %s", cfg.GetHealthCheckInterval())
	}
	if cfg.GetHealthCheckTimeout() != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.GetHealthCheckTimeout())
	}
	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", origins)
	}
}

func TestNewConfig_DebugForcesDebugLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_LEVEL", "error")

	cfg := NewConfig()

	if !cfg.IsDebug() {
		t.Fatalf("expected debug on")
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("DEBUG", "maybe")
	t.Setenv("HEALTH_CHECK_INTERVAL", "-5s")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.IsDebug() {
		t.Fatalf("expected unparsable DEBUG to fall back to false")
	}
	if cfg.GetHealthCheckInterval() != 300*time.Second {
		t.Fatalf("expected default interval, got %s", cfg.GetHealthCheckInterval())
	}
}
