package persona

import (
	"aidtracker/internal/pkg/errs"
)

const (
	// RegularMonthlyCap applies to every non-special persona.
	RegularMonthlyCap = 1

	// DefaultSpecialMonthlyCap is used when a persona is marked special without an explicit cap.
	DefaultSpecialMonthlyCap = 2

	MinSpecialMonthlyCap = 1
	MaxSpecialMonthlyCap = 3

	// UnlimitedDeliveries is the stored cap of indefinite special cases.
	UnlimitedDeliveries = 999
)

// SpecialCase holds the exception fields of a persona. The cap only matters
// while special is true, and an indefinite case has no cap at all.
type SpecialCase struct {
	special    bool
	monthlyCap int
	indefinite bool
	notes      string
}

// RegularCase is the state of every persona that was never marked special.
func RegularCase() SpecialCase {
	return SpecialCase{monthlyCap: RegularMonthlyCap}
}

// NewSpecialCase validates the cap unless the case is indefinite, in which
// case the cap is forced to UnlimitedDeliveries.
func NewSpecialCase(monthlyCap int, indefinite bool, notes string) (SpecialCase, error) {
	if indefinite {
		return SpecialCase{special: true, monthlyCap: UnlimitedDeliveries, indefinite: true, notes: notes}, nil
	}

	if monthlyCap < MinSpecialMonthlyCap || monthlyCap > MaxSpecialMonthlyCap {
		return SpecialCase{}, errs.NewValueIsOutOfRangeError(
			"monthly cap", monthlyCap, MinSpecialMonthlyCap, MaxSpecialMonthlyCap)
	}
	return SpecialCase{special: true, monthlyCap: monthlyCap, notes: notes}, nil
}

// RestoreSpecialCase rebuilds the stored fields without re-validating the cap,
// so rows written before a rule change can still be read.
func RestoreSpecialCase(special bool, monthlyCap int, indefinite bool, notes string) SpecialCase {
	return SpecialCase{special: special, monthlyCap: monthlyCap, indefinite: indefinite, notes: notes}
}

func (s SpecialCase) IsSpecial() bool {
	return s.special
}

// MonthlyCap is the stored cap, meaningful only for special cases.
func (s SpecialCase) MonthlyCap() int {
	return s.monthlyCap
}

// IsIndefinite is only true for special cases.
func (s SpecialCase) IsIndefinite() bool {
	return s.special && s.indefinite
}

func (s SpecialCase) Notes() string {
	return s.notes
}

// AllowedPerMonth is the cap that actually applies to the persona.
func (s SpecialCase) AllowedPerMonth() int {
	switch {
	case !s.special:
		return RegularMonthlyCap
	case s.indefinite:
		return UnlimitedDeliveries
	default:
		return s.monthlyCap
	}
}
