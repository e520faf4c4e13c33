package form

import (
	"fmt"
	"slices"
	"sync"
)

type entry struct {
	field    Field
	validate Validator
}

// Registry tracks registered fields by name. Several fields may share a name;
// they are kept together and reported as ambiguous instead of one winning.
type Registry struct {
	compiler *Compiler

	mu      sync.RWMutex
	buckets map[string][]entry
	order   []string
}

// NewRegistry creates a registry compiling rules with c. A nil compiler uses
// the builtin registries.
func NewRegistry(c *Compiler) *Registry {
	if c == nil {
		c = NewCompiler()
	}
	return &Registry{compiler: c, buckets: make(map[string][]entry)}
}

// Register adds field, compiling its rule string first. Nothing is stored
// when compilation fails.
func (r *Registry) Register(field Field) error {
	if field == nil {
		return ErrMissingName
	}
	if isNilField(field) {
		return fmt.Errorf("%w: %T", ErrNilField, field)
	}
	if field.Name() == "" {
		return ErrMissingName
	}
	name := field.Name()
	if !isComparable(field) {
		return fmt.Errorf("%w: field %q (%T)", ErrUncomparableField, name, field)
	}
	if err := checkAccessor(field); err != nil {
		return fmt.Errorf("%w: field %q is %s but %T has no accessor", err, name, field.Kind(), field)
	}

	var validate Validator
	if rf, ok := field.(RuledField); ok {
		rules, err := ParseRules(rf.Rules())
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		if len(rules) > 0 {
			validate, err = r.compiler.Compile(field, rules)
			if err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buckets[name]; !ok {
		r.order = append(r.order, name)
	}
	r.buckets[name] = append(r.buckets[name], entry{field: field, validate: validate})
	return nil
}

// Unregister removes exactly field. It reports whether field was registered.
func (r *Registry) Unregister(field Field) bool {
	removed, _ := r.unregister(field)
	return removed
}

// unregister also reports whether the name has no fields left.
func (r *Registry) unregister(field Field) (removed, emptied bool) {
	if field == nil || isNilField(field) || !isComparable(field) {
		return false, false
	}
	name := field.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	bucket := r.buckets[name]
	idx := slices.IndexFunc(bucket, func(e entry) bool { return e.field == field })
	if idx < 0 {
		return false, false
	}

	bucket = slices.Delete(slices.Clone(bucket), idx, idx+1)
	if len(bucket) > 0 {
		r.buckets[name] = bucket
		return true, false
	}

	delete(r.buckets, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return true, true
}

// Value returns the current value of the single field registered as name.
func (r *Registry) Value(name string) (any, error) {
	return r.Snapshot().Value(name)
}

// Fields returns the fields registered as name.
func (r *Registry) Fields(name string) []Field {
	return r.Snapshot().Fields(name)
}

// Names returns the registered names in first-registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Len returns the number of distinct names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *Registry) bucket(name string) []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buckets[name]
}

// Snapshot returns a point-in-time view that later Register and Unregister
// calls do not affect.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buckets := make(map[string][]entry, len(r.buckets))
	for name, b := range r.buckets {
		buckets[name] = b
	}
	return Snapshot{order: slices.Clone(r.order), buckets: buckets}
}

// Snapshot is a frozen copy of a Registry.
type Snapshot struct {
	order   []string
	buckets map[string][]entry
}

func (s Snapshot) Names() []string {
	return slices.Clone(s.order)
}

func (s Snapshot) Len() int {
	return len(s.order)
}

func (s Snapshot) Fields(name string) []Field {
	bucket := s.buckets[name]
	if len(bucket) == 0 {
		return nil
	}
	fields := make([]Field, len(bucket))
	for i, e := range bucket {
		fields[i] = e.field
	}
	return fields
}

func (s Snapshot) Value(name string) (any, error) {
	bucket := s.buckets[name]
	switch len(bucket) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	case 1:
		return fieldValue(bucket[0].field), nil
	default:
		return nil, fmt.Errorf("%w: %q has %d fields", ErrAmbiguousField, name, len(bucket))
	}
}

// Values reads every field. Ambiguous names map to nil.
func (s Snapshot) Values() Values {
	m := make(map[string]any, len(s.order))
	for _, name := range s.order {
		bucket := s.buckets[name]
		if len(bucket) == 1 {
			m[name] = fieldValue(bucket[0].field)
		} else {
			m[name] = nil
		}
	}
	return Values{names: slices.Clone(s.order), m: m}
}
