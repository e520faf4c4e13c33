package form

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrorEntry is the validation status of one field.
type ErrorEntry struct {
	Invalid bool
	Message string
}

// Errors maps field names to their status. Maps returned by ErrorState are
// shared and must be treated as read-only.
type Errors map[string]ErrorEntry

// Invalid reports whether name is marked invalid.
func (e Errors) Invalid(name string) bool {
	return e[name].Invalid
}

// Failed returns the invalid names, sorted.
func (e Errors) Failed() []string {
	var names []string
	for _, name := range slices.Sorted(maps.Keys(e)) {
		if e[name].Invalid {
			names = append(names, name)
		}
	}
	return names
}

// ErrorState holds per-field errors. Every change publishes a new map, so a
// snapshot taken earlier never changes underneath its reader.
type ErrorState struct {
	mu      sync.RWMutex
	errs    Errors
	version uint64
}

func NewErrorState() *ErrorState {
	return &ErrorState{errs: Errors{}}
}

// SetError records the status of name. detail supplies the message: a string
// is used as is, nil and booleans mean no message, anything else is rendered
// with fmt.Sprint. A valid status always drops the message.
func (s *ErrorState) SetError(name string, isError bool, detail any) {
	next := ErrorEntry{Invalid: isError}
	if isError {
		next.Message = detailMessage(detail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.errs[name]; ok && cur == next {
		return
	}
	errs := maps.Clone(s.errs)
	if errs == nil {
		errs = Errors{}
	}
	errs[name] = next
	s.publish(errs)
}

// Get returns the entry for name.
func (s *ErrorState) Get(name string) (ErrorEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.errs[name]
	return e, ok
}

// Snapshot returns the current errors.
func (s *ErrorState) Snapshot() Errors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.errs == nil {
		return Errors{}
	}
	return s.errs
}

// Version increases every time the published errors change.
func (s *ErrorState) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Delete drops the entry for name.
func (s *ErrorState) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.errs[name]; !ok {
		return
	}
	errs := maps.Clone(s.errs)
	delete(errs, name)
	s.publish(errs)
}

// Clear drops every entry.
func (s *ErrorState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.errs) == 0 {
		return
	}
	s.publish(Errors{})
}

func (s *ErrorState) publish(errs Errors) {
	s.errs = errs
	s.version++
}

func detailMessage(detail any) string {
	switch d := detail.(type) {
	case nil, bool:
		return ""
	case string:
		return d
	case error:
		return d.Error()
	default:
		return fmt.Sprint(d)
	}
}
