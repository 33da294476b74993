package ext

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// UnitKind classifies a unit as platform-dependent or pure. The host only
// carries this as metadata; what a consumer does with the distinction is
// its own business.
type UnitKind string

const (
	KindPlatform UnitKind = "platform"
	KindPure     UnitKind = "pure"
)

// Unit is the interface every loadable extension unit implements.
type Unit interface {
	Name() string
	Kind() UnitKind
	Ops() []Op
}

// Initializer is implemented by units with fallible load-time setup.
// A returned error fails the load; it is not retried.
type Initializer interface {
	Init(ctx context.Context) error
}

// Configurable is implemented by units accepting options from config.
type Configurable interface {
	Configure(opts map[string]any) error
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Unit{}
)

// Register adds a unit constructor to the global registry.
// Called from init() in each unit file.
func Register(name string, constructor func() Unit) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("ext: duplicate unit registration: %s", name))
	}
	registry[name] = constructor
}

// Get returns a new instance of the named unit.
func Get(name string) (Unit, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
	}
	return ctor(), nil
}

// All returns sorted names of all registered units.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
