package validator

import (
	"reflect"
	"strings"
)

// Required passes for non-blank strings, true booleans, non-empty collections
// and any other non-nil value.
func Required(value any, _ ...string) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Empty passes for nil, "", false and zero-length collections. Whitespace is
// not empty; combine with "required" for "has visible content".
func Empty(value any, _ ...string) bool {
	return isEmpty(value)
}

// MinLength: minLength:n, counted in runes.
func MinLength(value any, params ...string) bool {
	return length(value) >= atoi(params[0])
}

// MaxLength: maxLength:n, counted in runes.
func MaxLength(value any, params ...string) bool {
	return length(value) <= atoi(params[0])
}

// Length: length:n for an exact length, length:min:max for a range.
func Length(value any, params ...string) bool {
	n := length(value)
	if len(params) == 1 {
		return n == atoi(params[0])
	}
	return n >= atoi(params[0]) && n <= atoi(params[1])
}

// Equals: equals:x.
func Equals(value any, params ...string) bool {
	return toString(value) == params[0]
}

// Contains: contains:x.
func Contains(value any, params ...string) bool {
	return strings.Contains(toString(value), params[0])
}

// StartsWith: startsWith:x.
func StartsWith(value any, params ...string) bool {
	return strings.HasPrefix(toString(value), params[0])
}

// EndsWith: endsWith:x.
func EndsWith(value any, params ...string) bool {
	return strings.HasSuffix(toString(value), params[0])
}
