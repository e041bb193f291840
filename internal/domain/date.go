package domain

import (
	"fmt"
	"time"
)

// DateString is a calendar date in YYYY-MM-DD form. Tours are date-granular,
// so dates travel through the system as plain strings and are parsed only
// where calendar arithmetic is needed.
type DateString string

// NewDateString formats a time as a DateString, dropping the time of day.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// Parse converts the date string to a time.Time at midnight local time.
func (d DateString) Parse() (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", string(d), err)
	}
	return t, nil
}

// Validate returns an error if the value is not a well-formed YYYY-MM-DD date.
func (d DateString) Validate() error {
	_, err := d.Parse()
	return err
}

// IsTourDay returns true if the date falls on the weekly tour weekday.
func (d DateString) IsTourDay() bool {
	t, err := d.Parse()
	if err != nil {
		return false
	}
	return t.Weekday() == TourWeekday
}

// Before reports whether d sorts before other. Lexicographic order on
// YYYY-MM-DD strings matches chronological order.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

func (d DateString) String() string {
	return string(d)
}
