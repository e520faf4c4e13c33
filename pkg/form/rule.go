package form

import (
	"fmt"
	"strings"
)

// RuleSpec is one parsed rule of a rule string.
type RuleSpec struct {
	Name    string
	Inverse bool
	Params  []string
}

func (r RuleSpec) String() string {
	var b strings.Builder
	if r.Inverse {
		b.WriteByte('!')
	}
	b.WriteString(r.Name)
	for _, p := range r.Params {
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

// ParseRules parses "rule(,rule)*" where rule is "[!]name(:param)*".
// Whitespace around names and parameters is ignored. An empty string yields no rules.
func ParseRules(s string) ([]RuleSpec, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	specs := make([]RuleSpec, 0, len(tokens))
	for i, token := range tokens {
		parts := strings.Split(token, ":")

		name := strings.TrimSpace(parts[0])
		inverse := strings.HasPrefix(name, "!")
		if inverse {
			name = strings.TrimSpace(name[1:])
		}
		if name == "" {
			return nil, fmt.Errorf("%w: rule #%d in %q has no name", ErrInvalidRule, i+1, s)
		}

		var params []string
		if len(parts) > 1 {
			params = make([]string, 0, len(parts)-1)
			for _, p := range parts[1:] {
				p = strings.TrimSpace(p)
				if p == "" {
					return nil, fmt.Errorf("%w: rule %q in %q has an empty parameter", ErrInvalidRule, name, s)
				}
				params = append(params, p)
			}
		}

		specs = append(specs, RuleSpec{Name: name, Inverse: inverse, Params: params})
	}
	return specs, nil
}
