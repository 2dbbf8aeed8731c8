package utils

import "time"

const DateLayout = "2006-01-02"

// Today returns the UTC calendar day of t as yyyy-mm-dd.
func Today(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a stored yyyy-mm-dd date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatLong renders a stored date like "May 6, 2025". Unparseable dates are
// returned as they are.
func FormatLong(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}
