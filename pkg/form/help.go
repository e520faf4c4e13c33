package form

import "maps"

// Help is an error message source: either a single text for every rule or a
// message per rule name.
type Help struct {
	text   string
	byRule map[string]string
}

// HelpText returns a Help that yields text for every rule.
func HelpText(text string) Help {
	return Help{text: text}
}

// HelpRules returns a Help keyed by rule name.
func HelpRules(byRule map[string]string) Help {
	return Help{byRule: maps.Clone(byRule)}
}

// For returns the message for rule, or "" when there is none.
func (h Help) For(rule string) string {
	if h.byRule != nil {
		return h.byRule[rule]
	}
	return h.text
}

// Text returns the plain text of a HelpText. Rule mappings have no text.
func (h Help) Text() string {
	return h.text
}

func (h Help) IsZero() bool {
	return h.text == "" && len(h.byRule) == 0
}
