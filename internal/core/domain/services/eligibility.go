package services

import (
	"fmt"
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
)

// Code is the machine-readable reason of a Decision.
type Code string

const (
	CodeFirstTime            Code = "FIRST_TIME"
	CodeSpecialIndefinite    Code = "SPECIAL_INDEFINITE"
	CodeSpecialMonthlyLimit  Code = "SPECIAL_MONTHLY_LIMIT"
	CodeSpecialMinimumTime   Code = "SPECIAL_MINIMUM_TIME"
	CodeSpecialEligible      Code = "SPECIAL_ELIGIBLE"
	CodeMaxLimit             Code = "MAX_LIMIT"
	CodeAlreadyReceivedMonth Code = "ALREADY_RECEIVED_MONTH"
	CodeMinimumTime          Code = "MINIMUM_TIME"
	CodeEligible             Code = "ELIGIBLE"
)

const (
	// LifetimeLimit caps deliveries for regular personas.
	LifetimeLimit = 6

	// RegularMinimumDays and SpecialMinimumDays are the waits between deliveries.
	RegularMinimumDays = 30
	SpecialMinimumDays = 15
)

// Decision is the outcome of an eligibility check. It is never stored.
type Decision struct {
	Eligible            bool
	Reason              string
	Code                Code
	DaysRemaining       *int // nil when waiting does not help
	DeliveriesThisMonth int
	RemainingThisMonth  int
}

// EligibilityEngine decides whether a persona may receive a new delivery.
//
// Rules, in order:
//   - no delivery ever: eligible
//   - special and indefinite: always eligible
//   - special: monthly cap, then 15 days between deliveries
//   - regular: 6 deliveries per lifetime, one per month, 30 days between deliveries
//
// Days are whole calendar days in now's location.
type EligibilityEngine struct{}

func NewEligibilityEngine() EligibilityEngine {
	return EligibilityEngine{}
}

// Check evaluates p against its history at now.
func (e EligibilityEngine) Check(p *persona.Persona, h History, now time.Time) (Decision, error) {
	if err := p.Validate(); err != nil {
		return Decision{}, err
	}

	special := p.SpecialCase()
	if h.IsEmpty() {
		return Decision{
			Eligible:           true,
			Reason:             "Primera entrega",
			Code:               CodeFirstTime,
			RemainingThisMonth: special.AllowedPerMonth(),
		}, nil
	}

	today := kernel.DateOf(now)
	daysSince := max(today.DaysSince(kernel.DateOf(h.LastApprovedAt.In(now.Location()))), 0)
	daysToNextMonth := today.FirstOfNextMonth().DaysSince(today)

	if special.IsSpecial() {
		return e.checkSpecial(special, h, daysSince, daysToNextMonth), nil
	}
	return e.checkRegular(h, daysSince, daysToNextMonth), nil
}

func (e EligibilityEngine) checkSpecial(special persona.SpecialCase, h History, daysSince, daysToNextMonth int) Decision {
	if special.IsIndefinite() {
		return Decision{
			Eligible:            true,
			Reason:              "Caso especial indefinido",
			Code:                CodeSpecialIndefinite,
			DeliveriesThisMonth: h.ThisMonth,
			RemainingThisMonth:  persona.UnlimitedDeliveries,
		}
	}

	limit := special.MonthlyCap()
	if h.ThisMonth >= limit {
		return Decision{
			Reason:              fmt.Sprintf("Ya alcanzó el límite mensual (%d)", limit),
			Code:                CodeSpecialMonthlyLimit,
			DaysRemaining:       &daysToNextMonth,
			DeliveriesThisMonth: h.ThisMonth,
		}
	}

	remaining := limit - h.ThisMonth
	if daysSince < SpecialMinimumDays {
		wait := SpecialMinimumDays - daysSince
		return Decision{
			Reason:              fmt.Sprintf("Debe esperar %d días más (caso especial)", wait),
			Code:                CodeSpecialMinimumTime,
			DaysRemaining:       &wait,
			DeliveriesThisMonth: h.ThisMonth,
			RemainingThisMonth:  remaining,
		}
	}

	return Decision{
		Eligible:            true,
		Reason:              "Caso especial elegible",
		Code:                CodeSpecialEligible,
		DeliveriesThisMonth: h.ThisMonth,
		RemainingThisMonth:  remaining,
	}
}

func (e EligibilityEngine) checkRegular(h History, daysSince, daysToNextMonth int) Decision {
	if h.Total >= LifetimeLimit {
		return Decision{
			Reason:              fmt.Sprintf("Ha alcanzado el límite máximo de %d entregas", LifetimeLimit),
			Code:                CodeMaxLimit,
			DeliveriesThisMonth: h.ThisMonth,
		}
	}

	if h.ThisMonth >= persona.RegularMonthlyCap {
		return Decision{
			Reason:              "Ya recibió su entrega mensual",
			Code:                CodeAlreadyReceivedMonth,
			DaysRemaining:       &daysToNextMonth,
			DeliveriesThisMonth: h.ThisMonth,
		}
	}

	if daysSince < RegularMinimumDays {
		wait := RegularMinimumDays - daysSince
		return Decision{
			Reason:              fmt.Sprintf("Debe esperar %d días más", wait),
			Code:                CodeMinimumTime,
			DaysRemaining:       &wait,
			DeliveriesThisMonth: h.ThisMonth,
			RemainingThisMonth:  persona.RegularMonthlyCap,
		}
	}

	return Decision{
		Eligible:            true,
		Reason:              "Elegible para nueva entrega",
		Code:                CodeEligible,
		DeliveriesThisMonth: h.ThisMonth,
		RemainingThisMonth:  persona.RegularMonthlyCap,
	}
}
