// Package form coordinates validation of a dynamic set of named fields.
//
// Fields register with a Form as they appear and unregister when they go
// away. Each field exposes its value through a small capability interface
// (Field plus ValueField, CheckboxField or FileField) and may carry a rule
// string, an error-help source and a field-local validator. Rule strings are
// compiled once at registration against a validator registry chosen from the
// field kind:
//
//	username:required,minLength:3
//	nickname:!empty
//	pattern:matches:^[a-z]+$
//
// A rule is a name optionally prefixed with "!" (inverse) and followed by
// colon-separated parameters. Unknown rules and malformed parameters are
// reported by Register as configuration errors.
//
// Single-field validation picks the first applicable strategy: the form-wide
// WithValidateOne hook, the field's own Validate method, the compiled rules,
// or "always valid". The outcome is written to the form's ErrorState.
// ValidateAll runs the WithValidateAll hook when set, otherwise every
// registered field in registration order. Submit takes a Values snapshot,
// validates the whole form and calls exactly one of the submit handlers.
//
// Usage:
//
//	f, err := form.New(
//		form.WithErrorHelp(form.HelpText("Invalid value")),
//		form.WithValidSubmit(func(vals form.Values) { save(vals.Map()) }),
//		form.WithInvalidSubmit(func(failed []string, vals form.Values) { log.Println(failed) }),
//	)
//	if err != nil {
//		return err
//	}
//
//	username := form.NewInput("username", form.KindText,
//		form.WithRules("required,minLength:3"),
//		form.WithHelp(form.HelpRules(map[string]string{"minLength": "Too short"})),
//	)
//	if err := f.Register(username); err != nil {
//		return err
//	}
//
//	username.SetValue("jo")
//	f.HandleEvent("username", "change") // stores "Too short"
//	f.Submit()                          // calls the invalid handler with ["username"]
//
// A Form is safe for concurrent use. No internal lock is held while hooks,
// validators or submit handlers run, so they may call back into the form.
package form
