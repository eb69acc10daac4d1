package delivery

import (
	"fmt"

	"aidtracker/internal/pkg/errs"
)

// Status is the stage of a delivery record.
//
// State transitions:
//
//	Approved ──> Preparing ──> Ready ──> Delivered
//	                 │           │
//	                 └─────┬─────┘
//	                       └──> Expired (once now > expires_at)
//
// Delivered and Expired are final.
type Status int

const (
	// UnknownStatus catches uninitialized values.
	UnknownStatus Status = iota
	Approved
	Preparing
	Ready
	Delivered
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Approved:      "Approved",
		Preparing:     "Preparing",
		Ready:         "Ready",
		Delivered:     "Delivered",
		Expired:       "Expired",
	}
}

// getStatusValues returns the storage form of each valid status.
func getStatusValues() map[Status]string {
	//nolint:exhaustive // UnknownStatus is never stored
	return map[Status]string{
		Approved:  "aprobada",
		Preparing: "en_preparacion",
		Ready:     "lista",
		Delivered: "entregada",
		Expired:   "vencida",
	}
}

// getForwardTransitions lists the single step allowed out of each status.
// Expiry is handled separately because it depends on the clock.
func getForwardTransitions() map[Status]Status {
	//nolint:exhaustive // final states have no forward step
	return map[Status]Status{
		Approved:  Preparing,
		Preparing: Ready,
		Ready:     Delivered,
	}
}

// AllStatuses lists the valid statuses in workflow order.
func AllStatuses() []Status {
	return []Status{Approved, Preparing, Ready, Delivered, Expired}
}

// ParseStatus accepts the storage form ("en_preparacion").
func ParseStatus(s string) (Status, error) {
	for status, value := range getStatusValues() {
		if value == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusValues()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Value is the storage and wire form.
func (s Status) Value() string {
	return getStatusValues()[s]
}

// IsFinal reports whether no transition can leave s.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Expired
}

// CanExpire reports whether a record in s expires once its deadline passes.
func (s Status) CanExpire() bool {
	return s == Preparing || s == Ready
}

// Advance returns target when it is the next forward step from s.
func (s Status) Advance(target Status) (Status, error) {
	if next, ok := getForwardTransitions()[s]; ok && next == target {
		return target, nil
	}
	return UnknownStatus, errs.NewInvalidTransitionError(s.String(), target.String())
}
