package timeslot

import (
	"time"
)

// A Clock gives the current instant. It allows to pin "now" when
// needed, typically in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the Clock returning time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// Layouts lists the date/time layouts accepted when a start instant
// is given as a string. The first one is the canonical layout used
// to format Time values. Layouts are tried in order and the fields a
// layout lacks are zero, never taken from the current time.
var Layouts = []string{
	timeLayout,
	"2006-1-2 15:4:5",
	"2006-1-2 15:4",
	"2006-1-2 15",
	"2006-1-2",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339Nano,
}

// Config gathers the calendar settings used to build timeslots.
//
// A zero Config is usable: nil Clock means SystemClock, nil Location
// means time.Local and empty Layouts means the package Layouts.
type Config struct {
	Clock    Clock
	Location *time.Location
	Layouts  []string
}

// DefaultConfig is used by the package level functions.
var DefaultConfig = &Config{}

func (c *Config) clock() Clock {
	if c == nil || c.Clock == nil {
		return SystemClock
	}
	return c.Clock
}

func (c *Config) location() *time.Location {
	if c == nil || c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c *Config) layouts() []string {
	if c == nil || len(c.Layouts) == 0 {
		return Layouts
	}
	return c.Layouts
}

// Current returns the current instant of c Clock, in c location.
func (c *Config) Current() time.Time {
	return c.clock().Now().In(c.location())
}

// parse parses value using the first matching layout, in the
// configured location unless value carries its own zone. On failure
// the error of the first layout is returned.
func (c *Config) parse(value string) (time.Time, error) {
	loc := c.location()

	var firstErr error
	for _, layout := range c.layouts() {
		tm, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return tm, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// New returns a new Timeslot using c. See the package New function.
func (c *Config) New(start any, hours, minutes int) (Timeslot, error) {
	if hours < 0 || minutes < 0 {
		return Timeslot{}, &DurationError{Hours: hours, Minutes: minutes}
	}

	tm, err := c.resolveStart(start)
	if err != nil {
		return Timeslot{}, err
	}
	return newTimeslot(tm, hours, minutes), nil
}

// Parse returns a new Timeslot starting at the instant described by
// value. See the package Parse function.
func (c *Config) Parse(value string, hours, minutes int) (Timeslot, error) {
	return c.New(value, hours, minutes)
}

// Now returns the one hour Timeslot containing the current instant of
// c's Clock, aligned on the beginning of the current clock hour.
func (c *Config) Now() Timeslot {
	return newTimeslot(c.Current(), DefaultHours, DefaultMinutes).Round()
}

// ParseTime parses value as a Time using c settings.
func (c *Config) ParseTime(value string) (Time, error) {
	tm, err := c.parse(value)
	if err != nil {
		return Time{}, &StartError{Value: value, Err: err}
	}
	return Time(tm), nil
}
