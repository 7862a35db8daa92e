// Package timeslot handles time slots: intervals of calendar time
// starting at a given instant and lasting a given number of hours and
// minutes.
//
// The end of a Timeslot is the last second it contains, so one
// second before the start of the slot immediately following it:
//
//	ts, err := timeslot.Parse("2024-01-01 10:15:30", 2, 30)
//	// ts.Start() -> 2024-01-01 10:15:00
//	// ts.End()   -> 2024-01-01 12:44:59
//	// timeslot.After(ts).Start() -> 2024-01-01 12:45:00
//
// Timeslot values are immutable and safe for concurrent use.
package timeslot

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Default duration of a Timeslot, see NewDefault and Now.
const (
	DefaultHours   = 1
	DefaultMinutes = 0
)

// Slot is the minimal contract needed to chain time slots, see After
// and Before.
type Slot interface {
	Start() time.Time
	Hours() int
	Minutes() int
}

// Timeslot represents a time slot. Its zero value is an empty slot
// starting at the zero time, so ending one second before it.
type Timeslot struct {
	start   time.Time
	hours   int
	minutes int
}

var _ Slot = Timeslot{}

func newTimeslot(start time.Time, hours, minutes int) Timeslot {
	return Timeslot{
		start:   beginningOfMinute(start),
		hours:   hours,
		minutes: minutes,
	}
}

// beginningOfMinute zeroes the seconds of tm wall clock, even in zones
// whose offset is not a whole number of minutes.
func beginningOfMinute(tm time.Time) time.Time {
	return tm.Add(-time.Duration(tm.Second())*time.Second -
		time.Duration(tm.Nanosecond()))
}

func endOf(start time.Time, hours, minutes int) time.Time {
	return addDuration(start, hours, minutes).Add(-time.Second)
}

func addDuration(tm time.Time, hours, minutes int) time.Time {
	return tm.Add(time.Duration(hours) * time.Hour).
		Add(time.Duration(minutes) * time.Minute)
}

func subDuration(tm time.Time, hours, minutes int) time.Time {
	return tm.Add(-time.Duration(hours) * time.Hour).
		Add(-time.Duration(minutes) * time.Minute)
}

// New returns a new Timeslot starting at start and lasting hours
// hours and minutes minutes. The seconds of the start instant are
// dropped.
//
// start can be:
//   - nil, the current instant is used;
//   - a time.Time, *time.Time, Time, *Time, *now.Now or Timeslot (its
//     start), the instant is copied;
//   - a string or []byte, parsed using Layouts in the local time zone.
//
// Any other start value leads to an error matching ErrInvalidStart,
// an unparsable string to an error matching ErrUnparsableStart and
// negative hours or minutes to an error matching ErrInvalidDuration.
//
// New uses DefaultConfig, see Config.New to use other settings.
func New(start any, hours, minutes int) (Timeslot, error) {
	return DefaultConfig.New(start, hours, minutes)
}

// NewDefault returns a new one hour Timeslot starting at start. See
// New for the accepted start values.
func NewDefault(start any) (Timeslot, error) {
	return DefaultConfig.New(start, DefaultHours, DefaultMinutes)
}

// Parse returns a new Timeslot starting at the instant described by
// value, using DefaultConfig.
func Parse(value string, hours, minutes int) (Timeslot, error) {
	return DefaultConfig.Parse(value, hours, minutes)
}

// FromTime returns a new Timeslot starting at start. It panics if
// hours or minutes is negative.
func FromTime(start time.Time, hours, minutes int) Timeslot {
	if hours < 0 || minutes < 0 {
		panic(&DurationError{Hours: hours, Minutes: minutes})
	}
	return newTimeslot(start, hours, minutes)
}

// Now returns the one hour Timeslot starting at the beginning of the
// current clock hour, using DefaultConfig.
func Now() Timeslot {
	return DefaultConfig.Now()
}

// After returns a new Timeslot with the same duration as s, starting
// right after s ends.
func After(s Slot) Timeslot {
	hours, minutes := s.Hours(), s.Minutes()
	return newTimeslot(addDuration(s.Start(), hours, minutes), hours, minutes)
}

// Before returns a new Timeslot with the same duration as s, ending
// right before s starts.
func Before(s Slot) Timeslot {
	hours, minutes := s.Hours(), s.Minutes()
	return newTimeslot(subDuration(s.Start(), hours, minutes), hours, minutes)
}

// resolveStart turns the start value accepted by New into an instant.
func (c *Config) resolveStart(start any) (time.Time, error) {
	switch st := start.(type) {
	case nil:
		return c.Current(), nil
	case time.Time:
		return st, nil
	case *time.Time:
		if st != nil {
			return *st, nil
		}
	case Time:
		return time.Time(st), nil
	case *Time:
		if st != nil {
			return time.Time(*st), nil
		}
	case *now.Now:
		if st != nil {
			return st.Time, nil
		}
	case Timeslot:
		return st.start, nil
	case string:
		return c.parseStart(st)
	case []byte:
		return c.parseStart(string(st))
	}
	return time.Time{}, &StartError{Value: start}
}

func (c *Config) parseStart(value string) (time.Time, error) {
	tm, err := c.parse(value)
	if err != nil {
		return time.Time{}, &StartError{Value: value, Err: err}
	}
	return tm, nil
}

// Round returns a copy of t starting at the beginning of the clock
// hour t starts in. The duration is kept.
func (t Timeslot) Round() Timeslot {
	return newTimeslot(now.With(t.start).BeginningOfHour(), t.hours, t.minutes)
}

// Next returns the Timeslot following t. It is the same as After(t).
func (t Timeslot) Next() Timeslot {
	return After(t)
}

// Previous returns the Timeslot preceding t. It is the same as
// Before(t).
func (t Timeslot) Previous() Timeslot {
	return Before(t)
}

// Start returns the first instant of t.
func (t Timeslot) Start() time.Time {
	return t.start
}

// End returns the last instant of t, one second before the start of
// the following slot.
func (t Timeslot) End() time.Time {
	return endOf(t.start, t.hours, t.minutes)
}

// Hours returns the hours part of t duration.
func (t Timeslot) Hours() int {
	return t.hours
}

// Minutes returns the minutes part of t duration.
func (t Timeslot) Minutes() int {
	return t.minutes
}

// Duration returns the whole duration of t.
func (t Timeslot) Duration() time.Duration {
	return time.Duration(t.hours)*time.Hour + time.Duration(t.minutes)*time.Minute
}

// ToMap returns the start and end instants of t, respectively under
// "start" and "end" keys.
func (t Timeslot) ToMap() map[string]time.Time {
	return map[string]time.Time{
		"start": t.start,
		"end":   t.End(),
	}
}

// Has reports whether tm is within t. Both start and end instants
// are included. tm is compared with a one second precision.
func (t Timeslot) Has(tm time.Time) bool {
	tm = tm.Truncate(time.Second)
	return !tm.Before(t.start) && !tm.After(t.End())
}

// Overlaps reports whether t and s share at least one instant.
func (t Timeslot) Overlaps(s Slot) bool {
	other := endOf(s.Start(), s.Hours(), s.Minutes())
	return !other.Before(t.start) && !s.Start().After(t.End())
}

// Equal reports whether t and s start at the same instant and have
// the same duration.
func (t Timeslot) Equal(s Slot) bool {
	return t.start.Equal(s.Start()) &&
		t.hours == s.Hours() && t.minutes == s.Minutes()
}

// String returns a string representing the time slot.
func (t Timeslot) String() string {
	return fmt.Sprintf("%s - %s", Time(t.start), Time(t.End()))
}
