package httpform

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// DefaultMaxMemory bounds the in-memory part of a multipart body (10MB).
const DefaultMaxMemory = 10 << 20

// Spec declares one expected request field.
type Spec struct {
	Name       string
	Kind       form.Kind
	Rules      string
	Help       form.Help
	ValidateOn string

	// Sanitize rewrites each text value before binding, e.g. sanitizer.Email.
	Sanitize func(string) string
}

// Bind parses r and returns one input per Spec, in the given order.
//
// Text and other kinds hold nil when absent, a string for a single value and
// []string for repeated values, each passed through Spec.Sanitize when set.
// Checkboxes are checked for "on", "true", "1" or "yes". File inputs hold the
// uploaded parts.
func Bind(r *http.Request, specs ...Spec) ([]*form.Input, error) {
	values, files, err := parse(r)
	if err != nil {
		return nil, err
	}

	inputs := make([]*form.Input, 0, len(specs))
	for _, s := range specs {
		opts := []form.InputOption{
			form.WithRules(s.Rules),
			form.WithHelp(s.Help),
			form.WithValidateOn(s.ValidateOn),
		}

		switch s.Kind {
		case form.KindCheckbox:
			opts = append(opts, form.WithChecked(isChecked(values[s.Name])))
		case form.KindFile:
			opts = append(opts, form.WithFiles(files[s.Name]...))
		default:
			opts = append(opts, form.WithValue(textValue(values[s.Name], s.Sanitize)))
		}

		inputs = append(inputs, form.NewInput(s.Name, s.Kind, opts...))
	}
	return inputs, nil
}

func parse(r *http.Request) (map[string][]string, map[string][]*multipart.FileHeader, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil, ErrMissingContentType
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: malformed content type: %v", ErrInvalidForm, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil, nil

	case "multipart/form-data":
		if params["boundary"] == "" {
			return nil, nil, fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return map[string][]string{}, nil, nil
		}
		return r.MultipartForm.Value, r.MultipartForm.File, nil
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
}

func textValue(vals []string, sanitize func(string) string) any {
	if sanitize != nil && len(vals) > 0 {
		clean := make([]string, len(vals))
		for i, v := range vals {
			clean[i] = sanitize(v)
		}
		vals = clean
	}

	switch len(vals) {
	case 0:
		return nil
	case 1:
		return vals[0]
	default:
		return vals
	}
}

func isChecked(vals []string) bool {
	for _, v := range vals {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes":
			return true
		}
	}
	return false
}
