// Package recurrence computes the next occurrence of a reminder for a
// given recurrence rule. All functions are pure; a zero base time means
// the original remind time was unusable and yields no next occurrence.
package recurrence

import (
	"time"

	"notedesk/internal/domain/constant"
)

// One full week guarantees coverage of any non-empty weekday set; doubling
// gives headroom against the same-day edge case handled in NextWeekly.
const weeklyScanDays = 14

// NextSimple returns the next occurrence for fixed-interval rules,
// preserving the time of day of base. Daily adds one calendar day, weekly
// adds seven, and monthly adds one calendar month with Go's AddDate
// normalization (Jan 31 + 1 month lands on Mar 2 or Mar 3). Any other rule
// yields no next occurrence.
func NextSimple(base time.Time, rule constant.Recurrence) (time.Time, bool) {
	if base.IsZero() {
		return time.Time{}, false
	}
	switch rule {
	case constant.RecurrenceDaily:
		return base.AddDate(0, 0, 1), true
	case constant.RecurrenceWeekly:
		return base.AddDate(0, 0, 7), true
	case constant.RecurrenceMonthly:
		return base.AddDate(0, 1, 0), true
	default:
		return time.Time{}, false
	}
}

// NextWeekly returns the earliest timestamp strictly after base whose
// weekday is in days, preserving base's time of day. The scan starts one
// minute after base so an exact weekday/time match still moves forward,
// and each candidate is re-verified after its time of day is overwritten,
// since on the first scan day that overwrite can land at or before base.
// If nothing matches within the scan window (only possible for an empty
// set), the fallback is base plus seven days.
func NextWeekly(base time.Time, days constant.WeekdaySet) (time.Time, bool) {
	if base.IsZero() {
		return time.Time{}, false
	}
	scan := base.Add(time.Minute)
	for i := 0; i < weeklyScanDays; i++ {
		if days.Contains(scan.Weekday()) {
			candidate := time.Date(
				scan.Year(), scan.Month(), scan.Day(),
				base.Hour(), base.Minute(), base.Second(), base.Nanosecond(),
				base.Location(),
			)
			if candidate.After(base) {
				return candidate, true
			}
		}
		scan = scan.AddDate(0, 0, 1)
	}
	return base.AddDate(0, 0, 7), true
}
