package config

import (
	"testing"

	"pdf-text-extractor/internal/domain"
)

func TestNewContainer_Wiring(t *testing.T) {
	clearEnv(t)
	t.Setenv("HEALTH_CHECK_INTERVAL", "1h")

	container := NewContainer()

	if container.GetConfig() == nil || container.GetLogger() == nil {
		t.Fatalf("expected config and logger to be set")
	}
	if container.DocumentFetcher == nil || container.ExtractionService == nil || container.HealthMonitor == nil {
		t.Fatalf("expected services to be wired: %+v", container)
	}

	// The monitor is not started by wiring alone.
	state := container.HealthMonitor.Snapshot()
	if state.ChecksPerformed != 0 || state.Status != domain.HealthStatusHealthy {
		t.Fatalf("unexpected initial health state: %+v", state)
	}
}
