// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload
// propagation. Used for the few knobs that are legitimately runtime
// switchable, such as forcing the conservative full-fence strategy.

package control

import (
	"sync"

	"github.com/sugawarayuuta/sonnet"

	"github.com/momentics/atomicwait/api"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	copy := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		copy[k] = v
	}
	return copy
}

// GetBool reads a boolean key; absent or mistyped keys report false.
func (cs *ConfigStore) GetBool(key string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key].(bool)
	return ok && v
}

// SetConfig merges new values and dispatches reload listeners.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := cs.listeners
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// LoadJSON merges a JSON object into the store and dispatches reload
// listeners. Malformed input leaves the store untouched.
func (cs *ConfigStore) LoadJSON(data []byte) error {
	var cfg map[string]any
	if err := sonnet.Unmarshal(data, &cfg); err != nil {
		return api.NewError(api.ErrCodeBadConfig, "config parse failed").
			WithContext("cause", err.Error())
	}
	cs.SetConfig(cfg)
	return nil
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
