package validator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// Arity requires between min and max parameters. A negative max means no upper bound.
func Arity(min, max int) ParamCheck {
	return func(params []string) error {
		n := len(params)
		switch {
		case n < min:
			return fmt.Errorf("expected at least %d parameter(s), got %d", min, n)
		case max >= 0 && n > max:
			return fmt.Errorf("expected at most %d parameter(s), got %d", max, n)
		}
		return nil
	}
}

// IntParams requires every parameter to be a base-10 integer.
func IntParams() ParamCheck {
	return func(params []string) error {
		for _, p := range params {
			if _, err := strconv.Atoi(p); err != nil {
				return fmt.Errorf("%q is not an integer", p)
			}
		}
		return nil
	}
}

// FloatParams requires every parameter to be a number.
func FloatParams() ParamCheck {
	return func(params []string) error {
		for _, p := range params {
			if _, err := strconv.ParseFloat(p, 64); err != nil {
				return fmt.Errorf("%q is not a number", p)
			}
		}
		return nil
	}
}

// SizeParams requires every parameter to be a byte size ("512", "20KB", "5MB").
func SizeParams() ParamCheck {
	return func(params []string) error {
		for _, p := range params {
			if _, err := parseSize(p); err != nil {
				return err
			}
		}
		return nil
	}
}

// RegexpParam requires every parameter to compile as a regular expression.
func RegexpParam() ParamCheck {
	return func(params []string) error {
		for _, p := range params {
			if _, err := compileRegexp(p); err != nil {
				return fmt.Errorf("%q is not a valid pattern: %v", p, err)
			}
		}
		return nil
	}
}

// Patterns are compiled on first use, both for parameter checks and matching.
var regexpCache = cache.NewLRU[string, *regexp.Regexp](256)

func compileRegexp(pattern string) (*regexp.Regexp, error) {
	return regexpCache.GetOrLoad(pattern, regexp.Compile)
}

var sizeUnits = []struct {
	suffix string
	mult   int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

func parseSize(s string) (int64, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	mult := int64(1)
	for _, u := range sizeUnits {
		if num, ok := strings.CutSuffix(raw, u.suffix); ok {
			raw, mult = strings.TrimSpace(num), u.mult
			break
		}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not a byte size", s)
	}
	if n > math.MaxInt64/mult {
		return 0, fmt.Errorf("%q is too large", s)
	}
	return n * mult, nil
}
