package datemath

import (
	"fmt"
	"time"
)

// DateLayout is the local calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Clock returns the current instant. Injected wherever "now" matters so tests can pin it.
type Clock func() time.Time

// Calendar answers calendar-day questions in one fixed timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// NewCalendarIn creates a calendar pinned to loc. A nil loc means UTC.
func NewCalendarIn(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{location: loc}
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// LocalDate returns t's calendar date in the calendar's timezone as YYYY-MM-DD.
func (c *Calendar) LocalDate(t time.Time) string {
	return t.In(c.location).Format(DateLayout)
}

// DaysBetween counts calendar days from from's local date to to's local date.
// 23:00 on Monday to 01:00 on Tuesday is 1 day. DST transitions do not skew the result.
func (c *Calendar) DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.In(c.location).Date()
	ty, tm, td := to.In(c.location).Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Hour returns t's hour of day (0-23) in the calendar's timezone.
func (c *Calendar) Hour(t time.Time) int {
	return t.In(c.location).Hour()
}
