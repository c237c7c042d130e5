package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
)

// FormatForStorage renders d as YYYY-MM-DD using its own calendar fields.
func FormatForStorage(d time.Time) string {
	return d.Format(constants.DateFormat)
}

// ParseStorageDate parses a YYYY-MM-DD string as midnight in loc.
func ParseStorageDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// IsCurrentDay reports whether d falls on the same calendar day as now.
func IsCurrentDay(d, now time.Time) bool {
	return FormatForStorage(d) == FormatForStorage(now)
}

func IsWeekend(now time.Time) bool {
	wd := now.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
