package form

import "github.com/dmitrymomot/formkit/pkg/logger"

// Submit validates the current values and calls exactly one submit handler.
func (f *Form) Submit() Outcome {
	vals := f.Values()
	out := f.ValidateAll(vals)

	if out.Valid {
		f.log.Debug("form submitted", logger.Count(vals.Len()))
		f.cfg.onValid(vals)
		return out
	}

	f.log.Debug("form submission rejected", logger.Fields(out.Failed))
	f.cfg.onInvalid(out.Failed, vals)
	return out
}
