package form

import "strings"

// Kind selects how a field's value is read and which validator registry its
// rules compile against.
type Kind int

const (
	KindText Kind = iota
	KindCheckbox
	KindFile
	KindOther
)

// ParseKind maps an input type name to a Kind. Unknown types such as "email"
// or "password" are KindOther.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return KindText
	case "checkbox":
		return KindCheckbox
	case "file":
		return KindFile
	default:
		return KindOther
	}
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCheckbox:
		return "checkbox"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}
