package latex

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidDate indicates a date string could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"2006",
}

// FormatPhone normalizes a US phone number to "(AAA) BBB-CCCC". Input that
// does not reduce to exactly 10 digits is returned unchanged so international
// or free-form numbers degrade gracefully.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return raw
	}
	return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
}

// FormatDate renders an ISO-ish date string as "Jan 2006" (abbreviated month,
// four-digit year, English month names). It returns ErrInvalidDate when the
// input matches none of the accepted layouts.
func FormatDate(dateLike string) (string, error) {
	s := strings.TrimSpace(dateLike)
	if s == "" {
		return "", ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006"), nil
		}
	}
	return "", ErrInvalidDate
}
