package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or timezone component.
// Due dates are calendar dates; completion marks stay full timestamps.
// Keeping the two apart avoids day-boundary shifts when comparing them.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate accepts YYYY-MM-DD, or a full timestamp truncated to its date.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return DateOf(t.UTC()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// DateOf extracts the calendar date of an instant in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of the date, for ordering arithmetic.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) AddDays(days int) Date {
	return DateOf(d.Time().AddDate(0, 0, days))
}

// WeekStart returns the Monday of the ISO week containing the date.
func (d Date) WeekStart() Date {
	offset := (int(d.Time().Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekEnd returns the Sunday of the ISO week containing the date.
func (d Date) WeekEnd() Date {
	return d.WeekStart().AddDays(6)
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
