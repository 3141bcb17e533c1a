package constant

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Recurrence defines the rule governing how a reminder re-arms after firing.
type Recurrence string

const (
	// RecurrenceNone means the reminder fires once and is then dismissed.
	RecurrenceNone Recurrence = "none"
	// RecurrenceDaily re-arms the reminder one calendar day later.
	RecurrenceDaily Recurrence = "daily"
	// RecurrenceWeekly re-arms the reminder on the next matching weekday.
	RecurrenceWeekly Recurrence = "weekly"
	// RecurrenceMonthly re-arms the reminder one calendar month later.
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence normalizes a raw recurrence value. An empty string maps
// to RecurrenceNone; anything else unknown is rejected.
func ParseRecurrence(raw string) (Recurrence, bool) {
	switch Recurrence(raw) {
	case "":
		return RecurrenceNone, true
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return Recurrence(raw), true
	default:
		return RecurrenceNone, false
	}
}

func (r Recurrence) String() string {
	return string(r)
}

// WeekdaySet is an ordered set of weekday indices (0=Sunday..6=Saturday).
// It is only meaningful for weekly recurrence; an empty set means "use the
// weekday of the original remind time".
type WeekdaySet []int

// NewWeekdaySet builds a normalized set from raw indices: sorted,
// deduplicated, and rejected if any index falls outside [0,6].
func NewWeekdaySet(days []int) (WeekdaySet, bool) {
	seen := make(map[int]bool, len(days))
	set := make(WeekdaySet, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, false
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		set = append(set, d)
	}
	sort.Ints(set)
	return set, true
}

// Contains reports whether the set includes the given weekday.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	for _, v := range s {
		if v == int(d) {
			return true
		}
	}
	return false
}

// Value serializes the set as JSON for storage in a text column.
func (s WeekdaySet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]int(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the set from its stored JSON representation.
func (s *WeekdaySet) Scan(src interface{}) error {
	if src == nil {
		*s = WeekdaySet{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported weekday set source type %T", src)
	}
	if len(raw) == 0 {
		*s = WeekdaySet{}
		return nil
	}
	var days []int
	if err := json.Unmarshal(raw, &days); err != nil {
		return fmt.Errorf("failed to decode weekday set: %w", err)
	}
	*s = WeekdaySet(days)
	return nil
}
