package kernel

import (
	"fmt"
	"time"

	"aidtracker/internal/pkg/errs"
	"aidtracker/internal/pkg/guard"
)

// DateLayout is the ISO calendar-date layout used in storage and on the wire.
const DateLayout = time.DateOnly

var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateOf")

// Date is a calendar day with no time-of-day or zone.
// Day arithmetic happens on UTC midnights, so differences are always whole days
// regardless of daylight-saving changes in the caller's location.
type Date struct {
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDate validates and builds a calendar day. Overflowing values (Feb 30) are rejected.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date is invalid",
			fmt.Errorf("%04d-%02d-%02d does not exist", year, int(month), day),
		)
	}
	return Date{t: t, guard: guard.NewConstructorGuard()}, nil
}

// MustNewDate is NewDate for constants known to be valid.
func MustNewDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate reads a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date is invalid", err)
	}
	return Date{t: t, guard: guard.NewConstructorGuard()}, nil
}

// DateOf returns the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), guard: guard.NewConstructorGuard()}
}

func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

// AddDays moves the date by n days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n), guard: d.guard}
}

// DaysSince returns the signed number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t).Hours() / 24)
}

// FirstOfNextMonth returns day 1 of the month following d.
func (d Date) FirstOfNextMonth() Date {
	return Date{t: time.Date(d.t.Year(), d.t.Month()+1, 1, 0, 0, 0, 0, time.UTC), guard: d.guard}
}

// SameMonth reports whether both dates fall in the same calendar month and year.
func (d Date) SameMonth(other Date) bool {
	return d.t.Year() == other.t.Year() && d.t.Month() == other.t.Month()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
}

// YearsSince returns completed years from birth to d.
func (d Date) YearsSince(birth Date) int {
	years := d.t.Year() - birth.t.Year()
	if d.t.Month() < birth.t.Month() || (d.t.Month() == birth.t.Month() && d.t.Day() < birth.t.Day()) {
		years--
	}
	return years
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
