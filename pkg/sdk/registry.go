package sdk

import (
	"fmt"
	"sync"
)

// Factory builds a fresh, uninitialized plugin instance.
type Factory func() Plugin

// The process-wide registry. The host discovers plugin capabilities
// through a fixed registration made once per loaded library, so
// registration runs from package init() and is never repeated within a
// single load.
var registry = struct {
	mu        sync.RWMutex
	factories map[string]Factory
	names     []string
}{factories: make(map[string]Factory)}

// Register records a plugin factory under its registration name. It is
// meant to be called from init() and panics on a duplicate name or nil
// factory: both are programmer errors that would otherwise drop a
// plugin silently.
func Register(name string, f Factory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if name == "" || f == nil {
		panic("sdk: Register called with empty name or nil factory")
	}
	if _, dup := registry.factories[name]; dup {
		panic(fmt.Sprintf("sdk: plugin %q registered twice", name))
	}
	registry.factories[name] = f
	registry.names = append(registry.names, name)
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	f, ok := registry.factories[name]
	if !ok {
		return nil, fmt.Errorf("plugin %q not registered", name)
	}
	return f, nil
}

// Names returns the registered plugin names in registration order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]string, len(registry.names))
	copy(out, registry.names)
	return out
}
