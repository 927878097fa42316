package utils

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Characters permitted in an email address field; everything else is
	// stripped before validation.
	emailCharsRe = regexp.MustCompile("[^a-zA-Z0-9!#$%&'*+\\-/=?^_`{|}~@.\\[\\]]")

	emailFormatRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// SanitizeText trims surrounding whitespace and escapes HTML-significant
// characters so the value is safe to embed in notification email bodies.
func SanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// SanitizeEmail trims the address and strips characters that can never
// appear in a valid email address.
func SanitizeEmail(s string) string {
	return emailCharsRe.ReplaceAllString(strings.TrimSpace(s), "")
}

// ValidEmail reports whether a sanitized address is well-formed.
func ValidEmail(s string) bool {
	return emailFormatRe.MatchString(s)
}

// ParseAmount coerces a submitted numeric field to a float, defaulting to
// 0 when the input is not a number.
func ParseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseIntDefault coerces a submitted field to an int, truncating decimal
// input and defaulting to 0 when the input is not a number.
func ParseIntDefault(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
