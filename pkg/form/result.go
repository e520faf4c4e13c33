package form

import "fmt"

// Result is the outcome of validating one value. An invalid result with an
// empty Message means "invalid, no message".
type Result struct {
	Valid   bool
	Message string
}

// Pass is the valid result.
var Pass = Result{Valid: true}

// Fail returns an invalid result carrying msg.
func Fail(msg string) Result {
	return Result{Message: msg}
}

// ResultOf coerces a loosely typed validator outcome into a Result.
// true and nil pass, false fails, a string or error fails with its text,
// and any other value fails with its fmt.Sprint rendering.
func ResultOf(v any) Result {
	switch r := v.(type) {
	case nil:
		return Pass
	case Result:
		return r
	case bool:
		if r {
			return Pass
		}
		return Fail("")
	case string:
		return Fail(r)
	case error:
		return Fail(r.Error())
	default:
		return Fail(fmt.Sprint(r))
	}
}
