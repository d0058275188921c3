package dbconn

import (
	"fmt"
	"sort"
	"sync"
)

// builtin holds the backends compiled into the binary. Files guarded by
// build tags add themselves from init.
var builtin = map[Engine]Factory{}

// Registry maps engine names to engines and engines to backend factories.
type Registry struct {
	mu        sync.RWMutex
	names     map[string]Engine
	factories map[Engine]Factory
}

// NewRegistry returns a registry that knows every engine name but has no
// backend registered.
func NewRegistry() *Registry {
	return &Registry{
		names: map[string]Engine{
			MySQLName: EngineMySQL,
			ODBCName:  EngineODBC,
		},
		factories: make(map[Engine]Factory),
	}
}

// DefaultRegistry returns a registry holding the backends compiled into the binary.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for engine, factory := range builtin {
		r.Register(engine, factory)
	}
	return r
}

// Register makes factory the backend for engine, replacing any previous one.
func (r *Registry) Register(engine Engine, factory Factory) {
	r.mu.Lock()
	r.factories[engine] = factory
	r.mu.Unlock()
}

// Resolve maps a configured engine name to an enabled engine.
func (r *Registry) Resolve(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, ok := r.names[name]
	if !ok {
		return EngineNone, fmt.Errorf("%w %s", ErrUnsupportedEngine, name)
	}
	if _, ok := r.factories[engine]; !ok {
		return EngineNone, fmt.Errorf("%s %w, rebuild with it enabled or change engine", name, ErrEngineNotEnabled)
	}
	return engine, nil
}

// Open builds an unconnected Conn for engine.
func (r *Registry) Open(engine Engine, settings Settings) (Conn, error) {
	r.mu.RLock()
	factory, ok := r.factories[engine]
	r.mu.RUnlock()

	if !ok {
		if engine == EngineNone {
			return nil, fmt.Errorf("%w: no engine selected", ErrUnsupportedEngine)
		}
		return nil, fmt.Errorf("%s %w", engine, ErrEngineNotEnabled)
	}
	return factory(settings), nil
}

// Enabled returns the engines with a registered backend.
func (r *Registry) Enabled() []Engine {
	r.mu.RLock()
	out := make([]Engine, 0, len(r.factories))
	for engine := range r.factories {
		out = append(out, engine)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
