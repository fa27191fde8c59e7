package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PingFunc checks one external dependency.
type PingFunc func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every checked service answered.
func (h HealthStatus) Healthy() bool {
	if h.CheckedAt.IsZero() {
		return false
	}
	for _, ok := range h.Services {
		if !ok {
			return false
		}
	}
	return true
}

// HealthMonitor performs periodic health checks and keeps the latest snapshot in memory.
type HealthMonitor struct {
	checks   map[string]PingFunc
	interval time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(interval time.Duration, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{
		checks:   make(map[string]PingFunc),
		interval: interval,
		logger:   logger,
	}
}

// Register adds a named check. Call before Start.
func (m *HealthMonitor) Register(name string, ping PingFunc) {
	m.checks[name] = ping
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs every registered check once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Services: make(map[string]bool, len(m.checks))}
	for name, ping := range m.checks {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := ping(pingCtx)
		cancel()
		if err != nil {
			m.logger.Warn("health check failed", zap.String("service", name), zap.Error(err))
		}
		status.Services[name] = err == nil
	}
	status.CheckedAt = time.Now()

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start checks immediately and then on every tick until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
