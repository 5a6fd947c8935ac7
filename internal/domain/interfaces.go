package domain

import (
	"context"
	"time"
)

// URLResolver normalizes an incoming document URL into one that serves the file bytes
type URLResolver interface {
	ResolveURL(rawURL string) (string, error)
}

// DocumentFetcher downloads documents over HTTP
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Status(ctx context.Context, url string) (int, error)
}

// TextExtractor turns a document payload into plain text
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// ExtractionService runs the resolve, fetch and extract pipeline for a URL
type ExtractionService interface {
	Extract(ctx context.Context, url string) (*ExtractionResult, error)
}

// HealthReader exposes a read-only view of the health monitor
type HealthReader interface {
	Snapshot() HealthState
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetHost() string
	GetServerPort() string
	GetAddress() string
	IsDebug() bool
	GetLogLevel() string
	GetMaxFileSize() int64
	GetHealthCheckURL() string
	GetHealthCheckInterval() time.Duration
	GetHealthCheckTimeout() time.Duration
	GetAllowedOrigins() []string
}
