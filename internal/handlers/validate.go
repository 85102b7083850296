package handlers

import (
	"fmt"
	"time"
)

// Input limits for API requests.
const (
	maxExportItems = 500
	maxRangeDays   = 366
)

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses a request date in any accepted layout.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", s)
}

// validateRange checks a lookup range for ordering and span.
func validateRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("end date is before start date")
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("range exceeds %d days", maxRangeDays)
	}
	return nil
}
