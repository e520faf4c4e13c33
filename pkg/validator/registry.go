package validator

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry names shared by forms.
const (
	StandardRegistry = "standard"
	FileRegistry     = "file"
)

// Func is a validation predicate. It must be free of side effects.
type Func func(value any, params ...string) bool

// ParamCheck validates the parameters of a rule at compile time.
type ParamCheck func(params []string) error

type entry struct {
	fn     Func
	checks []ParamCheck
}

// Registry is a string-keyed table of predicates. It is safe for concurrent use.
type Registry struct {
	name string
	mu   sync.RWMutex
	fns  map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry(name string) *Registry {
	return &Registry{name: name, fns: make(map[string]entry)}
}

// Name returns the registry name.
func (r *Registry) Name() string {
	return r.name
}

// Register adds or replaces a predicate. It panics on an empty name or nil fn,
// both of which are programming errors.
func (r *Registry) Register(name string, fn Func, checks ...ParamCheck) *Registry {
	if name == "" {
		panic("validator: empty rule name")
	}
	if fn == nil {
		panic(fmt.Sprintf("validator: nil func for rule %q", name))
	}

	r.mu.Lock()
	r.fns[name] = entry{fn: fn, checks: checks}
	r.mu.Unlock()
	return r
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.fns[name]
	return e.fn, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Check verifies that name exists and that params satisfy its checks.
func (r *Registry) Check(name string, params []string) error {
	r.mu.RLock()
	e, ok := r.fns[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q in %s registry", ErrUnknownRule, name, r.name)
	}
	for _, check := range e.checks {
		if err := check(params); err != nil {
			return fmt.Errorf("%w: rule %q: %v", ErrInvalidParams, name, err)
		}
	}
	return nil
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.fns))
}

// Clone returns an independent copy that can be extended without touching r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{name: r.name, fns: maps.Clone(r.fns)}
}
