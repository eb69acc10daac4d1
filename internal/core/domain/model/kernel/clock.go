package kernel

import "time"

// Clock is the source of "now" for every time-dependent rule.
// The location of the returned time decides calendar days and months.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today is the current calendar day.
func Today(c Clock) Date {
	return DateOf(c.Now())
}

// FixedClock always returns the same instant. Used by jobs replaying a run and by tests.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
