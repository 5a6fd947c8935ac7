package config

import (
	"pdf-text-extractor/internal/domain"
	"pdf-text-extractor/internal/service"
	"pdf-text-extractor/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	DocumentFetcher   *service.DocumentFetcher
	ExtractionService *service.ExtractionService
	HealthMonitor     *service.HealthMonitor
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires every dependency from the given configuration
func NewContainerWithConfig(config domain.Config) *Container {
	appLogger := logger.NewLogger(config.GetLogLevel(), config.IsDebug())

	fetcher := service.NewDocumentFetcher(config.GetMaxFileSize(), appLogger)
	extractionService := service.NewExtractionService(
		service.NewURLResolver(),
		fetcher,
		service.NewPDFProcessor(appLogger),
		appLogger,
	)
	healthMonitor := service.NewHealthMonitor(fetcher, service.HealthMonitorConfig{
		ProbeURL: config.GetHealthCheckURL(),
		Interval: config.GetHealthCheckInterval(),
		Timeout:  config.GetHealthCheckTimeout(),
	}, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		DocumentFetcher:   fetcher,
		ExtractionService: extractionService,
		HealthMonitor:     healthMonitor,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
