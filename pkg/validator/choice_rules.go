package validator

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// In: in:a:b:c.
func In(value any, params ...string) bool {
	return slices.Contains(params, toString(value))
}

// NotIn: notIn:a:b:c.
func NotIn(value any, params ...string) bool {
	return !slices.Contains(params, toString(value))
}

// InFold is In with Unicode case folding ("STRASSE" matches "straße").
func InFold(value any, params ...string) bool {
	fold := cases.Fold()
	s := fold.String(toString(value))
	for _, p := range params {
		if fold.String(p) == s {
			return true
		}
	}
	return false
}

// Checked passes for true and for the strings browsers send for a ticked box.
func Checked(value any, _ ...string) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	}
	s := strings.ToLower(strings.TrimSpace(toString(value)))
	if s == "on" || s == "yes" {
		return true
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
