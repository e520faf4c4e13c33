package httpform

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// DefaultMessage is used for invalid fields that have no help text.
const DefaultMessage = "invalid value"

// ValidationError maps field names to messages.
type ValidationError url.Values

// NewValidationError creates an empty validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// NewValidationErrorFrom collects the help text of every failed field of f.
// The fields must still be registered; Submit calls it before unregistering.
func NewValidationErrorFrom(f *form.Form, failed []string) ValidationError {
	verr := NewValidationError()
	for _, name := range failed {
		msg := f.Help(name)
		if msg == "" {
			msg = DefaultMessage
		}
		verr.Add(name, msg)
	}
	return verr
}

// Error returns a summary with the first message of each field, sorted by field.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

// WriteErrors writes verr as a 422 JSON response.
func WriteErrors(w http.ResponseWriter, verr ValidationError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:  "validation failed",
		Fields: verr,
	})
}
