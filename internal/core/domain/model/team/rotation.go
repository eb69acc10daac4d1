package team

import (
	"time"

	"aidtracker/internal/core/domain/model/kernel"
)

const (
	// DaysPerWeek is the length of one duty window.
	DaysPerWeek = 7

	// CycleDays is the length of a full rotation: every team serves one week.
	CycleDays = DaysPerWeek * TeamCount
)

// Epoch is the reference Sunday on which AJ starts the first rotation week.
var Epoch = kernel.MustNewDate(2025, time.August, 3)

// Window is one duty week of a team, both ends inclusive.
type Window struct {
	Start      kernel.Date
	End        kernel.Date
	WeekNumber int // 1-based rotation week counted from the epoch
}

// Rotation maps calendar days to the team on duty. Teams rotate weekly in
// AllCodes order starting at Epoch. Rotation holds no mutable state.
type Rotation struct {
	epoch kernel.Date
}

// NewRotation builds the calculator for the given reference date.
func NewRotation(epoch kernel.Date) (Rotation, error) {
	if err := epoch.Validate(); err != nil {
		return Rotation{}, err
	}
	return Rotation{epoch: epoch}, nil
}

// DefaultRotation uses the program's fixed epoch.
func DefaultRotation() Rotation {
	return Rotation{epoch: Epoch}
}

func (r Rotation) Epoch() kernel.Date {
	return r.epoch
}

// WeekIndex returns the signed rotation week containing day.
// Days before the epoch give negative weeks, rounded toward minus infinity.
func (r Rotation) WeekIndex(day kernel.Date) int {
	return floorDiv(day.DaysSince(r.epoch), DaysPerWeek)
}

// TeamOnDuty returns the team serving on day.
func (r Rotation) TeamOnDuty(day kernel.Date) Code {
	return AllCodes()[floorMod(r.WeekIndex(day), TeamCount)]
}

// IsOnDuty reports whether code serves on day.
func (r Rotation) IsOnDuty(code Code, day kernel.Date) bool {
	return code == r.TeamOnDuty(day)
}

// UpcomingWindows lists the next count duty weeks of code, starting with the
// current week when code is on duty today. Unknown codes yield no windows.
func (r Rotation) UpcomingWindows(code Code, day kernel.Date, count int) []Window {
	slot := code.index()
	if slot < 0 || count <= 0 {
		return []Window{}
	}

	week := r.WeekIndex(day)
	week += floorMod(slot-week, TeamCount)

	windows := make([]Window, 0, count)
	for i := range count {
		w := week + i*TeamCount
		start := r.epoch.AddDays(w * DaysPerWeek)
		windows = append(windows, Window{
			Start:      start,
			End:        start.AddDays(DaysPerWeek - 1),
			WeekNumber: w + 1,
		})
	}
	return windows
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
