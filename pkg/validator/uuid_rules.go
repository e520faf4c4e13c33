package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID accepts the canonical 36-character form. uuid:4 additionally pins the version.
func UUID(value any, params ...string) bool {
	s := strings.TrimSpace(toString(value))

	// Cheap shape check before parsing.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if len(params) == 0 {
		return true
	}
	return int(id.Version()) == atoi(params[0])
}
