// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for library-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/momentics/atomicwait/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// DumpJSON serializes the current snapshot for export to external tooling.
func (mr *MetricsRegistry) DumpJSON() ([]byte, error) {
	out, err := sonnet.Marshal(mr.GetSnapshot())
	if err != nil {
		return nil, api.NewError(api.ErrCodeInternal, "metrics export failed").
			WithContext("cause", err.Error())
	}
	return out, nil
}
