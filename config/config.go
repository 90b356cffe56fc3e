// Package config holds process-wide default configuration for buses.
//
// The core package never reads these defaults; they are applied once by
// busbar.New at construction time. Changing them later affects only buses
// constructed afterwards.
package config

import (
	"sync"

	"github.com/busworks/busbar/core"
)

var (
	mu      sync.RWMutex
	current = core.DefaultConfig()
)

// Default returns a copy of the current process-wide defaults.
func Default() core.Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault replaces the process-wide defaults.
func SetDefault(cfg core.Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}

// Reset restores the built-in defaults.
func Reset() {
	SetDefault(core.DefaultConfig())
}
