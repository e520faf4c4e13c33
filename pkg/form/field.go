package form

import (
	"mime/multipart"
	"reflect"
)

// Field is the minimum a form needs from an input.
// Implementations must be comparable; pointer types are the usual choice.
type Field interface {
	Name() string
	Kind() Kind
}

// ValueField exposes the value of text and other kinds.
type ValueField interface {
	Field
	Value() any
}

// CheckboxField exposes the state of a checkbox.
type CheckboxField interface {
	Field
	Checked() bool
}

// FileField exposes selected uploads.
type FileField interface {
	Field
	Files() []*multipart.FileHeader
}

// RuledField carries a rule string compiled at registration.
type RuledField interface {
	Field
	Rules() string
}

// ValidatingField validates its own value. Returning false as the second
// value means the field has no opinion and validation falls through to its
// compiled rules.
type ValidatingField interface {
	Field
	Validate(value any, vals Values) (Result, bool)
}

// HelpField provides the error message source for rule failures.
type HelpField interface {
	Field
	ErrorHelp() Help
}

// EventField overrides the event that triggers validation of this field.
type EventField interface {
	Field
	ValidateOn() string
}

func checkAccessor(f Field) error {
	var ok bool
	switch f.Kind() {
	case KindCheckbox:
		_, ok = f.(CheckboxField)
	case KindFile:
		_, ok = f.(FileField)
	default:
		_, ok = f.(ValueField)
	}
	if !ok {
		return ErrMissingAccessor
	}
	return nil
}

func fieldValue(f Field) any {
	switch f.Kind() {
	case KindCheckbox:
		if cf, ok := f.(CheckboxField); ok {
			return cf.Checked()
		}
	case KindFile:
		if ff, ok := f.(FileField); ok {
			return ff.Files()
		}
	default:
		if vf, ok := f.(ValueField); ok {
			return vf.Value()
		}
	}
	return nil
}

func fieldHelp(f Field) Help {
	if hf, ok := f.(HelpField); ok {
		return hf.ErrorHelp()
	}
	return Help{}
}

func isComparable(f Field) bool {
	return reflect.TypeOf(f).Comparable()
}

// isNilField catches typed nils such as (*Input)(nil) hidden behind the interface.
func isNilField(f Field) bool {
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
