package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day. It carries no time of day and no zone, so two
// dates compare purely by year, month, and day.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date, rejecting anything the calendar does not contain
// (month 13, April 31, February 29 outside leap years, and so on).
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("roster: year %d is out of range", year)
	}
	probe := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if probe.Year() != year || probe.Month() != month || probe.Day() != day {
		return Date{}, fmt.Errorf("roster: %02d/%02d/%04d is not a calendar date", int(month), day, year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate reads the MM/DD/YYYY form used at the shell boundary.
func ParseDate(value string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("roster: date %q must be MM/DD/YYYY", value)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("roster: date %q: bad month: %w", value, err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("roster: date %q: bad day: %w", value, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("roster: date %q: bad year: %w", value, err)
	}
	date, err := NewDate(year, time.Month(month), day)
	if err != nil {
		return Date{}, fmt.Errorf("roster: date %q: %w", value, err)
	}
	return date, nil
}

// Today returns the current wall-clock day in local time.
func Today() Date {
	now := time.Now()
	return Date{year: now.Year(), month: now.Month(), day: now.Day()}
}

// IsZero reports whether the date was never set. Store operations treat a
// zero date as "use today".
func (d Date) IsZero() bool {
	return d == Date{}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Before reports whether d falls strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// String renders the date as MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", int(d.month), d.day, d.year)
}
