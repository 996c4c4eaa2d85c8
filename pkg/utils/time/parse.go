// ABOUTME: Time parsing utilities for ISO-8601 timestamps
// ABOUTME: Handles the timestamp variants emitted by the remote API

package time

import (
	"strings"
	"time"
)

// ISO-8601 variants the remote API is known to emit. RFC 3339 covers both
// a trailing "Z" and an explicit numeric offset.
var isoFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISOTime attempts to parse an ISO-8601 timestamp string, reporting
// whether any known variant matched
func ParseISOTime(timeStr string) (time.Time, bool) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}, false
	}

	for _, format := range isoFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
