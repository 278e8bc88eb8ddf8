package utils

import (
	"context"
	"sync"
	"time"
)

// HealthCheck probes one external dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every probed service answered.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Services {
		if !ok {
			return false
		}
	}
	return true
}

// HealthMonitor keeps the latest health snapshot in memory.
type HealthMonitor struct {
	checks map[string]HealthCheck

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor over the named checks.
func NewHealthMonitor(checks map[string]HealthCheck) *HealthMonitor {
	return &HealthMonitor{checks: checks}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs every probe once and stores the snapshot.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Services: make(map[string]bool, len(m.checks)), CheckedAt: time.Now()}
	for name, check := range m.checks {
		probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		status.Services[name] = check(probeCtx) == nil
		cancel()
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, every time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(every)
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
