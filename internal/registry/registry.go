// Package registry provides a global registry of snapshot sink factories.
// Sinks register themselves by name, allowing the CLI to pick them from
// configuration without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Env is what a factory may draw on to build a sink.
type Env struct {
	Config    config.Config
	Store     *storage.Store // nil when the database could not be opened
	SessionID string
}

// Factory builds a sink for one session.
// Sinks that also implement io.Closer are closed when the session ends.
type Factory func(env Env) (t2048.SnapshotSink, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a sink factory to the registry.
// Panics if a sink with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: sink %q already registered", name))
	}

	factories[name] = f
}

// List returns the names of all registered sinks, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for name := range factories {
		result = append(result, name)
	}
	sort.Strings(result)

	return result
}

// Create builds the named sink.
// Returns an error if the name is not registered or the factory fails.
func Create(name string, env Env) (t2048.SnapshotSink, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown sink %q", name)
	}

	sink, err := f(env)
	if err != nil {
		return nil, fmt.Errorf("registry: sink %q: %w", name, err)
	}
	return sink, nil
}

// Exists checks if a sink with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
