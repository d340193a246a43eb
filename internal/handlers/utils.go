package handlers

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted formats for date bound parameters, tried in
// order. A bare date means midnight UTC, matching the inclusive-bound
// semantics of the search.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDateParam parses an ISO-8601 date or date-time string.
func parseDateParam(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}
