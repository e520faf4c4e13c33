package form

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Outcome is the result of validating the whole form.
type Outcome struct {
	Valid  bool
	Failed []string
}

// tier is one validation strategy. It reports false when it does not apply
// to the field, handing over to the next tier.
type tier func(name string, e entry, value any, vals Values) (Result, bool)

func (f *Form) buildTiers() []tier {
	var tiers []tier
	if hook := f.cfg.validateOne; hook != nil {
		tiers = append(tiers, func(name string, _ entry, value any, vals Values) (Result, bool) {
			return hook(name, value, vals), true
		})
	}
	return append(tiers, fieldTier, compiledTier)
}

func fieldTier(_ string, e entry, value any, vals Values) (Result, bool) {
	vf, ok := e.field.(ValidatingField)
	if !ok {
		return Result{}, false
	}
	return vf.Validate(value, vals)
}

func compiledTier(_ string, e entry, value any, _ Values) (Result, bool) {
	if e.validate == nil {
		return Result{}, false
	}
	return e.validate(value), true
}

// ValidateOne validates the field registered as name against vals and stores
// the outcome. Unknown names are invalid and leave the errors untouched;
// ambiguous names are stored as invalid without a message.
func (f *Form) ValidateOne(name string, vals Values) bool {
	return f.validateBucket(name, f.registry.bucket(name), vals)
}

func (f *Form) validateBucket(name string, bucket []entry, vals Values) bool {
	switch len(bucket) {
	case 0:
		f.log.Warn("validate unknown field", logger.Field(name), logger.Error(ErrFieldNotFound))
		return false
	case 1:
	default:
		f.log.Warn("validate ambiguous field",
			logger.Field(name),
			logger.Count(len(bucket)),
			logger.Error(ErrAmbiguousField),
		)
		f.errors.SetError(name, true, nil)
		return false
	}

	e := bucket[0]
	value, ok := vals.Get(name)
	if !ok {
		value = fieldValue(e.field)
	}
	res := f.resolve(name, e, value, vals)
	f.errors.SetError(name, !res.Valid, res.Message)
	return res.Valid
}

func (f *Form) resolve(name string, e entry, value any, vals Values) Result {
	for _, t := range f.tiers {
		if res, ok := t(name, e, value, vals); ok {
			return res
		}
	}
	return Pass
}

// ValidateAll validates the whole form against vals. With a WithValidateAll
// hook the hook decides: every name it returns fails and every other
// registered field is cleared. Without one each registered field is validated
// in registration order.
func (f *Form) ValidateAll(vals Values) Outcome {
	snap := f.registry.Snapshot()

	var failed []string
	if hook := f.cfg.validateAll; hook != nil {
		failed = f.applyFailures(snap, hook(vals))
	} else {
		for _, name := range snap.order {
			if !f.validateBucket(name, snap.buckets[name], vals) {
				failed = append(failed, name)
			}
		}
	}

	out := Outcome{Valid: len(failed) == 0, Failed: failed}
	f.log.Debug("form validated", logger.Valid(out.Valid), logger.Fields(out.Failed))
	return out
}

func (f *Form) applyFailures(snap Snapshot, failures Failures) []string {
	var failed []string
	for _, name := range snap.order {
		detail, ok := failures[name]
		if ok {
			failed = append(failed, name)
		}
		f.errors.SetError(name, ok, detail)
	}

	var unknown []string
	for name := range failures {
		if _, ok := snap.buckets[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		f.log.Warn("validation failures for unregistered fields", logger.Fields(unknown))
		failed = append(failed, unknown...)
	}
	return failed
}
