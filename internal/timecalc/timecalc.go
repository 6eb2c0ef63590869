package timecalc

import (
	"fmt"
	"time"
)

// Components is a day/hour/minute/second breakdown of an elapsed duration.
// Days here are 86400-second periods; calendar-day questions go through
// DaysBetween instead.
type Components struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Zero is the all-zero breakdown returned for non-positive durations.
var Zero = Components{}

// Formatted renders the breakdown as "Nd NNh NNm NNs".
func (c Components) Formatted() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// Calculator does pure date math for streak timing. Calendar-day operations
// use the configured location; elapsed-duration operations are location
// independent.
type Calculator struct {
	loc *time.Location
}

// New returns a Calculator using the given location for calendar-day
// boundaries. A nil location means the system timezone.
func New(loc *time.Location) Calculator {
	if loc == nil {
		loc = time.Local
	}
	return Calculator{loc: loc}
}

// NewInTimezone builds a Calculator from an IANA timezone name. An empty name
// or "Local" selects the system timezone.
func NewInTimezone(timezone string) (Calculator, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return Calculator{}, err
	}
	return New(loc), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// Components decomposes the elapsed time between two instants. For to <= from
// it returns all zeroes, never negative values. The split is exact integer
// truncation over 86400/3600/60-second units with no rounding.
func (c Calculator) Components(from, to time.Time) Components {
	d := to.Sub(from)
	if d <= 0 {
		return Zero
	}

	total := int(d / time.Second)
	return Components{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// DaysBetween is the calendar-day difference between two instants, computed
// from the start-of-day boundary of each in the configured location. This is
// distinct from Components().Days: crossing midnight counts here even when
// fewer than 24 hours have elapsed.
func (c Calculator) DaysBetween(from, to time.Time) int {
	start := c.StartOfDay(from)
	end := c.StartOfDay(to)
	// Round rather than truncate: DST shifts make some midnight-to-midnight
	// spans 23 or 25 hours.
	diff := end.Sub(start)
	if diff < 0 {
		return -int((-diff + 12*time.Hour) / (24 * time.Hour))
	}
	return int((diff + 12*time.Hour) / (24 * time.Hour))
}

// IsSameDay reports whether two instants fall on the same calendar day in the
// configured location.
func (c Calculator) IsSameDay(t, ref time.Time) bool {
	a := t.In(c.loc)
	b := ref.In(c.loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of the instant's calendar day in the configured
// location.
func (c Calculator) StartOfDay(t time.Time) time.Time {
	local := t.In(c.loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// DateBySubtractingDays steps a number of calendar days back from the given
// instant.
func (c Calculator) DateBySubtractingDays(days int, from time.Time) time.Time {
	return from.In(c.loc).AddDate(0, 0, -days)
}

// Location exposes the calculator's configured location.
func (c Calculator) Location() *time.Location {
	return c.loc
}
