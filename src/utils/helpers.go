package utils

import (
	"time"

	"gigbook/src/config"
)

// FormatShowTime renders a show's start time for display. Shows without a
// start time render as an empty string rather than a zero timestamp.
func FormatShowTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(config.TIME_DISPLAY_FORMAT)
}

// ParseShowTime parses a submitted start time in the accepted layout.
func ParseShowTime(s string) (time.Time, error) {
	return time.Parse(config.TIME_PARSE_FORMAT, s)
}
