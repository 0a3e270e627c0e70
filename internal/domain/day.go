package domain

import (
	"fmt"
	"time"
)

const dayDateLayout = "2006-01-02"

// DayDate is a calendar-day key in "YYYY-MM-DD" form. Lexicographic order
// matches chronological order, so DayDate values compare directly.
type DayDate string

// ParseDayDate validates s as a calendar date.
func ParseDayDate(s string) (DayDate, error) {
	if _, err := time.Parse(dayDateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDayDate, s)
	}
	return DayDate(s), nil
}

// DayDateOf converts a time.Time to its calendar-day key.
func DayDateOf(t time.Time) DayDate {
	return DayDate(t.Format(dayDateLayout))
}

func (d DayDate) String() string {
	return string(d)
}

// Time returns midnight of the day in UTC. d must be a valid DayDate.
func (d DayDate) Time() time.Time {
	t, _ := time.Parse(dayDateLayout, string(d))
	return t
}

// Next returns the following calendar day.
func (d DayDate) Next() DayDate {
	return DayDateOf(d.Time().AddDate(0, 0, 1))
}

// Prev returns the preceding calendar day.
func (d DayDate) Prev() DayDate {
	return DayDateOf(d.Time().AddDate(0, 0, -1))
}

// Weekday returns the day of week, 0 (Sunday) through 6 (Saturday).
func (d DayDate) Weekday() int {
	return int(d.Time().Weekday())
}

// DayKind classifies a schedule day. Free-form values from the data layer
// collapse to DayKindUnknown at the boundary.
type DayKind string

const (
	DayKindWorking DayKind = "working"
	DayKindRest    DayKind = "rest"
	DayKindAbsence DayKind = "absence"
	DayKindZCOT    DayKind = "zcot"
	DayKindUnknown DayKind = "unknown"
)

// ParseDayKind maps a raw day-type string to its DayKind, falling back to
// DayKindUnknown for unrecognized values.
func ParseDayKind(s string) DayKind {
	switch DayKind(s) {
	case DayKindWorking, DayKindRest, DayKindAbsence, DayKindZCOT:
		return DayKind(s)
	default:
		return DayKindUnknown
	}
}

func (k DayKind) String() string {
	return string(k)
}

// DaySchedule is the planner-entered record for one calendar day.
type DaySchedule struct {
	Day         DayDate
	Kind        DayKind
	Description string
	IsOffShift  bool
	Tranches    []RawInterval
}

// UnknownDaySchedule synthesizes the empty record used for days inside a
// requested window that have no stored schedule.
func UnknownDaySchedule(day DayDate) *DaySchedule {
	return &DaySchedule{
		Day:  day,
		Kind: DayKindUnknown,
	}
}
