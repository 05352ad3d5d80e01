package parsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a date string (e.g. "20240131", "2024-01-31", "Jan 31, 2024")
// and truncates it to midnight UTC.
func ParseDate(dateString string) (time.Time, error) {
	dateString = strings.TrimSpace(dateString)
	if dateString == "" {
		return time.Time{}, fmt.Errorf("unable to parse empty date")
	}

	t, err := dateparse.ParseIn(dateString, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s", dateString)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
