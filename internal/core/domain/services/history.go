package services

import (
	"time"

	"aidtracker/internal/core/domain/model/kernel"
)

// History is the slice of a persona's delivery log the eligibility rules need.
// ThisMonth counts approvals in the calendar month of the evaluation time.
type History struct {
	LastApprovedAt *time.Time
	ThisMonth      int
	Total          int
}

// IsEmpty reports whether the persona never received a delivery.
func (h History) IsEmpty() bool {
	return h.LastApprovedAt == nil || h.Total == 0
}

// BuildHistory summarizes approval timestamps as seen from now. Calendar
// months are taken in now's location.
func BuildHistory(approvals []time.Time, now time.Time) History {
	var h History
	today := kernel.DateOf(now)

	for i := range approvals {
		at := approvals[i]
		h.Total++
		if h.LastApprovedAt == nil || at.After(*h.LastApprovedAt) {
			h.LastApprovedAt = &at
		}
		if kernel.DateOf(at.In(now.Location())).SameMonth(today) {
			h.ThisMonth++
		}
	}
	return h
}

// MonthBounds returns the half-open range [start, end) of now's calendar
// month in now's location, for storage-side counting.
func MonthBounds(now time.Time) (time.Time, time.Time) {
	today := kernel.DateOf(now)
	start := today.AddDays(1 - today.Day()).In(now.Location())
	end := today.FirstOfNextMonth().In(now.Location())
	return start, end
}
