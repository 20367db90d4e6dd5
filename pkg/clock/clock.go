package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	ShortTimeLayout = "15:04"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// Clock supplies the current instant. Everything that compares against "now"
// takes a Clock so tests can pin time.
type Clock interface {
	Now() time.Time
}

type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

var (
	StartOfDay = TimeOfDay{}
	EndOfDay   = TimeOfDay{Hour: 23, Minute: 59, Second: 59}
)

// ParseTimeOfDay accepts "15:04:05" and "15:04".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{TimeLayout, ShortTimeLayout} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value)
}

func MustParseTimeOfDay(value string) TimeOfDay {
	tod, err := ParseTimeOfDay(value)
	if err != nil {
		panic(err)
	}
	return tod
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Short renders the time as HH:MM, 24-hour.
func (t TimeOfDay) Short() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
}

// DateOnly truncates t to midnight of its calendar day in loc.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Combine joins a calendar date and a wall-clock time into one instant in loc.
// Only the year, month and day of date are used.
func Combine(date time.Time, tod TimeOfDay, loc *time.Location) time.Time {
	if loc == nil {
		loc = date.Location()
	}
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, tod.Second, 0, loc)
}

// DaysBetween returns the number of calendar days from a to b, using only the
// year, month and day fields. Civil dates are mapped onto UTC so DST
// transitions cannot shift the result.
func DaysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
