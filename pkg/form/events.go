package form

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// HandleEvent validates name when event is the field's trigger event.
// handled is false when the event does not trigger validation or the name is unknown.
func (f *Form) HandleEvent(name, event string) (handled, valid bool) {
	fields := f.registry.Fields(name)
	if len(fields) == 0 {
		return false, false
	}

	event = normalizeEvent(event)
	if !f.triggers(fields, event) {
		return false, false
	}

	f.log.Debug("field event", logger.Field(name), logger.Event(event))
	return true, f.ValidateOne(name, f.Values())
}

func (f *Form) triggers(fields []Field, event string) bool {
	for _, field := range fields {
		on := f.cfg.validateOn
		if ef, ok := field.(EventField); ok && ef.ValidateOn() != "" {
			on = normalizeEvent(ef.ValidateOn())
		}
		if on == event {
			return true
		}
	}
	return false
}

// normalizeEvent maps handler-style names to event names: "onChange" and
// "change" are both "change".
func normalizeEvent(event string) string {
	event = strings.TrimSpace(event)
	if rest, ok := strings.CutPrefix(event, "on"); ok && rest != "" {
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsUpper(r) {
			event = rest
		}
	}
	return strings.ToLower(event)
}
