package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Email checks RFC 5322 syntax plus the usual web constraints: a bare address
// (no display name) whose domain has at least one dot and no empty labels.
func Email(value any, _ ...string) bool {
	s := strings.TrimSpace(toString(value))
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL requires an absolute URL with scheme and host. url:https:http limits
// the accepted schemes.
func URL(value any, params ...string) bool {
	s := strings.TrimSpace(toString(value))
	if s == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	if len(params) == 0 {
		return true
	}
	for _, scheme := range params {
		if strings.EqualFold(u.Scheme, scheme) {
			return true
		}
	}
	return false
}

// Phone accepts E.164-like numbers; spaces, dashes, dots and parentheses are ignored.
func Phone(value any, _ ...string) bool {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '(', ')':
			return -1
		}
		return r
	}, toString(value))
	return phoneRegex.MatchString(s)
}

func IP(value any, _ ...string) bool {
	return net.ParseIP(strings.TrimSpace(toString(value))) != nil
}

func IPv4(value any, _ ...string) bool {
	ip := net.ParseIP(strings.TrimSpace(toString(value)))
	return ip != nil && ip.To4() != nil
}

func IPv6(value any, _ ...string) bool {
	s := strings.TrimSpace(toString(value))
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && strings.Contains(s, ":")
}

func Alpha(value any, _ ...string) bool {
	return alphaRegex.MatchString(toString(value))
}

func Alphanumeric(value any, _ ...string) bool {
	return alphanumericRegex.MatchString(toString(value))
}

// Numeric passes for anything that parses as a float, including numeric types.
func Numeric(value any, _ ...string) bool {
	_, ok := toFloat(value)
	return ok
}

// Integer passes for base-10 integers.
func Integer(value any, _ ...string) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	_, err := strconv.ParseInt(strings.TrimSpace(toString(value)), 10, 64)
	return err == nil
}

// Boolean passes for values strconv.ParseBool understands.
func Boolean(value any, _ ...string) bool {
	if _, ok := value.(bool); ok {
		return true
	}
	_, err := strconv.ParseBool(strings.TrimSpace(toString(value)))
	return err == nil
}

// Slug accepts lower-case words joined by single dashes.
func Slug(value any, _ ...string) bool {
	return slugRegex.MatchString(toString(value))
}

// Matches: matches:pattern. The pattern must match somewhere in the value;
// anchor it with ^ and $ for a full match.
func Matches(value any, params ...string) bool {
	re, err := compileRegexp(params[0])
	if err != nil {
		return false
	}
	return re.MatchString(toString(value))
}
