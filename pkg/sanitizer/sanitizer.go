package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRegex = regexp.MustCompile(`\s+`)

// Apply runs the transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower trims and lower-cases s.
func Lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseSpace trims s and squeezes runs of whitespace into one space.
func CollapseSpace(s string) string {
	return spaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripControl drops control characters except tab and newline.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			return -1
		}
		return r
	}, s)
}

// Digits keeps only ASCII digits, e.g. for phone numbers.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Email trims and lower-cases an address and removes repeated or edge dots
// from its local part. Values without exactly one "@" are only trimmed and
// lower-cased so the email rule can still reject them.
func Email(s string) string {
	s = Lower(s)
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return s
	}
	for strings.Contains(local, "..") {
		local = strings.ReplaceAll(local, "..", ".")
	}
	return strings.Trim(local, ".") + "@" + domain
}
