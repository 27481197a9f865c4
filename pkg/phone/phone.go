package phone

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidFormat is the only failure the phone field can report.
var ErrInvalidFormat = errors.New("invalid Indian phone number format")

const (
	CountryCode = "91"
	TrunkPrefix = "0"

	// BlurMessage is attached to the field when it loses focus with a bad value.
	BlurMessage = "Please enter a valid Indian phone number (10 digits starting with 6-9)"
	// SubmitMessage is surfaced when a submit is blocked.
	SubmitMessage = "Please enter a valid Indian phone number"
)

// Accepted shapes of a cleaned number: +91XXXXXXXXXX, 91XXXXXXXXXX,
// 0XXXXXXXXXX and XXXXXXXXXX, where X[0] is 6-9.
var indianPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\+91[6-9]\d{9}$`),
	regexp.MustCompile(`^91[6-9]\d{9}$`),
	regexp.MustCompile(`^0[6-9]\d{9}$`),
	regexp.MustCompile(`^[6-9]\d{9}$`),
}

// ValidationResult is the verdict for a single field value.
type ValidationResult struct {
	Valid   bool
	Message string
}

// Err returns ErrInvalidFormat for an invalid result and nil otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return ErrInvalidFormat
}

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	return keep(s, false)
}

// Clean keeps ASCII digits and '+' characters. Stray '+' signs are kept so
// that the patterns reject them instead of silently repairing the input.
func Clean(s string) string {
	return keep(s, true)
}

func keep(s string, plus bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (plus && c == '+') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Format renders the digits of s as +CC-XXX-XXX-XXXX. A bare number of up to
// ten digits gets the 91 country code; anything starting with 91 or with the
// trunk prefix 0 is left as typed. Digits past the fourth group are dropped.
// Format never fails: empty or digit-free input yields "".
func Format(s string) string {
	v := Digits(s)

	if len(v) > 0 && !strings.HasPrefix(v, CountryCode) && !strings.HasPrefix(v, TrunkPrefix) {
		if len(v) <= 10 {
			v = CountryCode + v
		}
	}

	if len(v) > 2 {
		v = "+" + v[:2] + "-" + v[2:]
	}
	if len(v) > 7 {
		v = v[:7] + "-" + v[7:]
	}
	if len(v) > 11 {
		end := len(v)
		if end > 15 {
			end = 15
		}
		v = v[:11] + "-" + v[11:end]
	}
	return v
}

// IsValidIndian reports whether s is an Indian mobile number in one of the
// accepted shapes once spaces, dashes and other separators are stripped.
func IsValidIndian(s string) bool {
	cleaned := Clean(s)
	for _, p := range indianPatterns {
		if p.MatchString(cleaned) {
			return true
		}
	}
	return false
}

// Validate wraps IsValidIndian with the user-facing message.
func Validate(s string) ValidationResult {
	if IsValidIndian(s) {
		return ValidationResult{Valid: true}
	}
	return ValidationResult{Message: BlurMessage}
}

// Subscriber returns the ten-digit subscriber number of a valid input.
func Subscriber(s string) (string, error) {
	if !IsValidIndian(s) {
		return "", ErrInvalidFormat
	}
	d := Digits(s)
	return d[len(d)-10:], nil
}

// E164 returns +91 followed by the subscriber number of a valid input.
func E164(s string) (string, error) {
	sub, err := Subscriber(s)
	if err != nil {
		return "", err
	}
	return "+" + CountryCode + sub, nil
}
