package form

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Validator is a compiled rule list bound to one field.
type Validator func(value any) Result

// Compiler turns parsed rules into a Validator. File fields compile against
// File, every other kind against Standard.
type Compiler struct {
	Standard *validator.Registry
	File     *validator.Registry

	// Defaults is the form-level message source used when the field has no
	// message for the failing rule.
	Defaults Help

	// Translate renders a resolved message. The args are key/value pairs
	// "field", "rule", "param" and "params".
	Translate func(key string, args ...string) string
}

// NewCompiler returns a compiler over the builtin registries.
func NewCompiler() *Compiler {
	return &Compiler{Standard: validator.NewStandard(), File: validator.NewFile()}
}

type compiledRule struct {
	spec RuleSpec
	fn   validator.Func
}

// Compile binds rules to field. Every rule name and its parameters are
// checked against the registry picked by the field kind.
func (c *Compiler) Compile(field Field, rules []RuleSpec) (Validator, error) {
	reg := c.Standard
	if field.Kind() == KindFile {
		reg = c.File
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: no registry for %s fields", ErrUnknownRule, field.Kind())
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, spec := range rules {
		if err := reg.Check(spec.Name, spec.Params); err != nil {
			return nil, err
		}
		fn, _ := reg.Lookup(spec.Name)
		compiled = append(compiled, compiledRule{spec: spec, fn: fn})
	}

	name := field.Name()
	help := fieldHelp(field)

	return func(value any) Result {
		failed := -1
		for i, r := range compiled {
			ok := r.fn(value, r.spec.Params...)
			if r.spec.Inverse {
				ok = !ok
			}
			if !ok && failed < 0 {
				failed = i
			}
		}
		if failed < 0 {
			return Pass
		}
		return Fail(c.message(name, help, compiled[failed].spec))
	}, nil
}

func (c *Compiler) message(field string, help Help, spec RuleSpec) string {
	msg := help.For(spec.Name)
	if msg == "" {
		msg = c.Defaults.For(spec.Name)
	}
	if msg == "" || c.Translate == nil {
		return msg
	}

	var param string
	if len(spec.Params) > 0 {
		param = spec.Params[0]
	}
	return c.Translate(msg,
		"field", field,
		"rule", spec.Name,
		"param", param,
		"params", strings.Join(spec.Params, ", "),
	)
}
