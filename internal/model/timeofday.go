package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeOfDay is a clock time without a date, stored in MySQL TIME columns
// ("HH:MM:SS"). It is kept as seconds since midnight so window comparisons
// are plain integer comparisons. The zero value is midnight.
//
// No timezone conversion happens here: values are compared against the
// local wall clock as-is, which is what the happy-hour rules expect.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	return TimeOfDay(hour*3600 + min*60 + sec)
}

// TimeOfDayFrom extracts the clock time of t in t's location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Clock())
}

// ParseTimeOfDay parses "HH:MM:SS" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	switch n, _ := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); n {
	case 2, 3:
		// seconds are optional
	default:
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return NewTimeOfDay(h, m, sec), nil
}

// String renders the value back to "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Scan implements sql.Scanner so TIME columns scan directly into the type.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// Value implements driver.Valuer for writing back to TIME columns.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}
