package httpform

import (
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Result is the outcome of Submit.
type Result struct {
	form.Outcome

	// Errors holds one message per failed field. It is collected before the
	// inputs are unregistered and is nil when the submission is valid.
	Errors ValidationError
}

// Submit binds r, registers the inputs on f and submits it. The inputs are
// unregistered before Submit returns, whatever the outcome.
func Submit(r *http.Request, f *form.Form, specs ...Spec) (Result, error) {
	inputs, err := Bind(r, specs...)
	if err != nil {
		return Result{}, err
	}

	registered := make([]*form.Input, 0, len(inputs))
	defer func() {
		for _, in := range registered {
			f.Unregister(in)
		}
	}()

	for _, in := range inputs {
		if err := f.Register(in); err != nil {
			return Result{}, err
		}
		registered = append(registered, in)
	}

	res := Result{Outcome: f.Submit()}
	if !res.Valid {
		res.Errors = NewValidationErrorFrom(f, res.Failed)
	}
	return res, nil
}
