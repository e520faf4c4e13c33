package form

import (
	"fmt"
	"maps"
	"mime/multipart"
	"slices"
)

// Values is an immutable snapshot of field values keyed by name. It is the
// context handed to validators for cross-field checks.
type Values struct {
	names []string
	m     map[string]any
}

// NewValues builds a snapshot from m with names sorted.
func NewValues(m map[string]any) Values {
	return Values{names: slices.Sorted(maps.Keys(m)), m: maps.Clone(m)}
}

func (v Values) Get(name string) (any, bool) {
	val, ok := v.m[name]
	return val, ok
}

func (v Values) Value(name string) any {
	return v.m[name]
}

// String renders the value as text. Missing and nil values are "".
func (v Values) String(name string) string {
	switch val := v.m[name].(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		if len(val) > 0 {
			return val[0]
		}
		return ""
	default:
		return fmt.Sprint(val)
	}
}

func (v Values) Bool(name string) bool {
	b, _ := v.m[name].(bool)
	return b
}

func (v Values) Files(name string) []*multipart.FileHeader {
	files, _ := v.m[name].([]*multipart.FileHeader)
	return files
}

// Names returns the field names in registration order.
func (v Values) Names() []string {
	return slices.Clone(v.names)
}

// Map returns a copy of the name to value mapping.
func (v Values) Map() map[string]any {
	if v.m == nil {
		return map[string]any{}
	}
	return maps.Clone(v.m)
}

func (v Values) Len() int {
	return len(v.m)
}
