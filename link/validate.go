package link

import (
	"net/url"
	"regexp"
	"strings"
)

// Result is the outcome of live input validation. Message is set only when
// Valid is false.
type Result struct {
	Valid   bool
	Message string
}

var (
	emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRx = regexp.MustCompile(`^[0-9\s+()-]+$`)
)

func ok() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// Validate checks raw user input against the format a kind's primary field
// requires. It is called on every keystroke of a link editor, so it never
// fails hard: malformed input is a Result, not an error.
func Validate(raw string, kind Kind) Result {
	if kind == KindNone {
		// nothing is required for a link that goes nowhere
		return ok()
	}
	if strings.TrimSpace(raw) == "" {
		return invalid("value is required")
	}

	switch kind {
	case KindExternal:
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || !u.IsAbs() {
			return invalid("must be an absolute URL starting with http:// or https://")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return invalid("only http:// and https:// URLs are supported")
		}
		return ok()
	case KindEmail:
		if !emailRx.MatchString(strings.TrimSpace(raw)) {
			return invalid("must look like name@example.com")
		}
		return ok()
	case KindPhone, KindSMS:
		if !phoneRx.MatchString(raw) {
			return invalid("may only contain digits, spaces and + - ( )")
		}
		return ok()
	case KindAnchor:
		if !strings.HasPrefix(raw, "#") {
			return invalid("must start with #")
		}
		return ok()
	default:
		// remaining kinds carry free text - no format constraint at this layer
		return ok()
	}
}
