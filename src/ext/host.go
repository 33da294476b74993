package ext

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const defaultMaxConcurrentCalls = 64

// HostOptions configures a Host.
type HostOptions struct {
	// MaxConcurrentCalls bounds in-flight operation dispatches.
	// Zero means the default.
	MaxConcurrentCalls int64

	// UnitOptions holds per-unit configuration applied at load time to
	// units implementing Configurable.
	UnitOptions map[string]map[string]any

	// Manifests, when set, is consulted at load time: a unit with a
	// manifest must satisfy it (API constraint and declared ops).
	// Units without a manifest load unchecked.
	Manifests *ManifestSet
}

// Host is the environment units load into. Loads are idempotent: loading
// a name twice returns the same instance and never re-runs initialization.
type Host struct {
	mu     sync.RWMutex
	loaded map[string]*loadedUnit
	opts   HostOptions
	sem    *semaphore.Weighted
}

type loadedUnit struct {
	unit Unit
	ops  map[string]Op
}

// NewHost creates an empty host.
func NewHost(opts HostOptions) *Host {
	max := opts.MaxConcurrentCalls
	if max <= 0 {
		max = defaultMaxConcurrentCalls
	}
	return &Host{
		loaded: make(map[string]*loadedUnit),
		opts:   opts,
		sem:    semaphore.NewWeighted(max),
	}
}

// Load instantiates and initializes the named unit. A second Load of the
// same name is a no-op returning the already-loaded instance. A failed
// init leaves the unit unloaded and is not retried automatically.
func (h *Host) Load(ctx context.Context, name string) (Unit, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if lu, ok := h.loaded[name]; ok {
		return lu.unit, nil
	}

	unit, err := Get(name)
	if err != nil {
		return nil, err
	}
	if unit.Name() != name {
		return nil, fmt.Errorf("ext: unit registered as %s reports name %s", name, unit.Name())
	}

	if c, ok := unit.(Configurable); ok {
		if opts := h.opts.UnitOptions[name]; len(opts) > 0 {
			if err := c.Configure(opts); err != nil {
				return nil, &InitError{Unit: name, Err: err}
			}
		}
	}

	if init, ok := unit.(Initializer); ok {
		if err := init.Init(ctx); err != nil {
			return nil, &InitError{Unit: name, Err: err}
		}
	}

	ops := make(map[string]Op, len(unit.Ops()))
	for _, op := range unit.Ops() {
		if _, dup := ops[op.Name]; dup {
			return nil, &InitError{Unit: name, Err: fmt.Errorf("duplicate operation %s", op.Name)}
		}
		ops[op.Name] = op
	}

	if h.opts.Manifests != nil {
		if m, ok := h.opts.Manifests.Lookup(name); ok {
			if err := m.Verify(unit); err != nil {
				return nil, &InitError{Unit: name, Err: err}
			}
		}
	}

	h.loaded[name] = &loadedUnit{unit: unit, ops: ops}
	return unit, nil
}

// LoadAll loads the named units concurrently. The first failure cancels
// the rest; units that already loaded stay loaded.
func (h *Host) LoadAll(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		g.Go(func() error {
			_, err := h.Load(ctx, name)
			return err
		})
	}
	return g.Wait()
}

// Loaded reports whether the named unit is loaded.
func (h *Host) Loaded(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.loaded[name]
	return ok
}

// LoadedUnits returns sorted names of loaded units.
func (h *Host) LoadedUnits() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.loaded))
	for name := range h.loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ops returns the operations of a loaded unit, sorted by name.
func (h *Host) Ops(unitName string) ([]Op, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	lu, ok := h.loaded[unitName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, unitName)
	}
	ops := make([]Op, 0, len(lu.ops))
	for _, op := range lu.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops, nil
}

// Call dispatches an operation on a loaded unit. Dispatch is bounded by
// the host's concurrency limit; arity is enforced by the Op binding.
func (h *Host) Call(ctx context.Context, unitName, opName string, args ...Value) (Value, error) {
	h.mu.RLock()
	lu, ok := h.loaded[unitName]
	h.mu.RUnlock()
	if !ok {
		return None(), fmt.Errorf("%w: %s", ErrNotLoaded, unitName)
	}

	op, ok := lu.ops[opName]
	if !ok {
		return None(), fmt.Errorf("%w: %s.%s", ErrUnknownOp, unitName, opName)
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return None(), err
	}
	defer h.sem.Release(1)

	return op.Call(ctx, args)
}
