package codec

import "time"

// FormatISO renders t as ISO 8601 text in its own zone, with fractional
// seconds only when present.
func FormatISO(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseISO parses RFC 3339 text (fractional seconds optional). The zone in
// the text is kept.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
