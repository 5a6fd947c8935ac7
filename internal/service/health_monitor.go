package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"pdf-text-extractor/internal/domain"
)

// HealthMonitorConfig controls the background probe
type HealthMonitorConfig struct {
	ProbeURL string
	Interval time.Duration
	Timeout  time.Duration
}

// HealthMonitor periodically downloads a known-good document and records the outcome.
// It is the only writer of its HealthState; handlers read copies via Snapshot.
type HealthMonitor struct {
	fetcher domain.DocumentFetcher
	cfg     HealthMonitorConfig
	logger  domain.Logger
	now     func() time.Time

	mu    sync.RWMutex
	state domain.HealthState

	startOnce sync.Once
	stopOnce  sync.Once
	started   atomic.Bool
	stop      chan struct{}
	done      chan struct{}
}

// NewHealthMonitor creates a monitor in the healthy state with no checks performed
func NewHealthMonitor(fetcher domain.DocumentFetcher, cfg HealthMonitorConfig, logger domain.Logger) *HealthMonitor {
	m := &HealthMonitor{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	m.state = domain.HealthState{
		Status:    domain.HealthStatusHealthy,
		LastCheck: m.now(),
	}
	return m
}

// Snapshot returns a copy of the current health state
func (m *HealthMonitor) Snapshot() domain.HealthState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Start launches the probe loop. The first probe runs immediately.
// Calling Start more than once has no effect.
func (m *HealthMonitor) Start() {
	m.startOnce.Do(func() {
		m.started.Store(true)
		go m.run()
		m.logger.Info("Health check loop started", "interval", m.cfg.Interval.String(), "probe_url", m.cfg.ProbeURL)
	})
}

// Stop ends the probe loop and waits for it to exit
func (m *HealthMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
	if m.started.Load() {
		<-m.done
	}
}

func (m *HealthMonitor) run() {
	defer close(m.done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-m.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	m.RunCheck(ctx)

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.RunCheck(ctx)
		}
	}
}

// RunCheck performs one probe cycle. Whatever the outcome, including a panic
// in the probe, the check time and counter are updated.
func (m *HealthMonitor) RunCheck(ctx context.Context) {
	status := domain.HealthStatusUnhealthy
	var lastErr *string

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("health check panicked: %v", r)
			status, lastErr = domain.HealthStatusUnhealthy, &msg
			m.logger.Error("Health check failed", errors.New(msg))
		}

		m.mu.Lock()
		m.state.Status = status
		m.state.LastError = lastErr
		m.state.LastCheck = m.now()
		m.state.ChecksPerformed++
		m.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	code, err := m.fetcher.Status(ctx, m.cfg.ProbeURL)
	switch {
	case err != nil:
		msg := err.Error()
		status, lastErr = domain.HealthStatusUnhealthy, &msg
		m.logger.Error("Health check failed", err)
	case code == http.StatusOK:
		status, lastErr = domain.HealthStatusHealthy, nil
		m.logger.Info("Health check passed")
	default:
		msg := fmt.Sprintf("Test download failed with status %d", code)
		status, lastErr = domain.HealthStatusWarning, &msg
		m.logger.Warn("Health check warning", "last_error", msg)
	}
}
