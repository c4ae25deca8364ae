// Package timeutil handles timestamps in the Dushanbe time zone (UTC+5).
// All persisted timestamps use the fixed "2006-01-02 15:04:05" layout, which
// keeps lexicographic order aligned with chronological order and allows
// date filtering by string prefix.
package timeutil

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// DateTimeLayout is the layout of all persisted timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the layout of date-only values used for report windows.
const DateLayout = "2006-01-02"

// Working hours, informational only. Operations are never blocked outside them.
const (
	WorkHoursStart = 10
	WorkHoursEnd   = 20
)

// Zone is the Dushanbe time zone (UTC+5, no DST).
var Zone = time.FixedZone("Asia/Dushanbe", 5*60*60)

// Now returns the current time in the Dushanbe time zone.
func Now() time.Time {
	return time.Now().In(Zone)
}

// NowString returns the current Dushanbe time formatted with DateTimeLayout.
func NowString() string {
	return Now().Format(DateTimeLayout)
}

// Format formats t in the Dushanbe time zone with DateTimeLayout.
func Format(t time.Time) string {
	return t.In(Zone).Format(DateTimeLayout)
}

// Parse parses a DateTimeLayout timestamp as Dushanbe-local time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, Zone)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	return t, nil
}

// Today returns the current Dushanbe date in DateLayout.
func Today() string {
	return Now().Format(DateLayout)
}

// Yesterday returns the previous Dushanbe date in DateLayout.
func Yesterday() string {
	return Now().AddDate(0, 0, -1).Format(DateLayout)
}

// IsWorkingHours reports whether t falls within the advisory working hours.
func IsWorkingHours(t time.Time) bool {
	local := t.In(Zone)
	start := time.Date(local.Year(), local.Month(), local.Day(), WorkHoursStart, 0, 0, 0, Zone)
	end := time.Date(local.Year(), local.Month(), local.Day(), WorkHoursEnd, 0, 0, 0, Zone)
	return !local.Before(start) && !local.After(end)
}

// WorkingHoursMessage returns the informational working-hours notice.
func WorkingHoursMessage() string {
	return fmt.Sprintf("Working hours: %02d:00-%02d:00 (UTC+5, Dushanbe)", WorkHoursStart, WorkHoursEnd)
}
