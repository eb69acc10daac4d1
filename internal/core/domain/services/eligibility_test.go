package services_test

import (
	"testing"
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is mid-month so month boundaries do not interfere unless a test wants them to.
var now = time.Date(2025, time.September, 15, 12, 0, 0, 0, time.UTC)

func regularPersona(t *testing.T) *persona.Persona {
	t.Helper()

	p, err := persona.NewPersona(kernel.NewUUID(), persona.Profile{
		NationalID:    "0801-1990-00001",
		FirstName:     "María",
		LastName:      "López",
		BirthDate:     kernel.MustNewDate(1990, time.October, 1),
		MaritalStatus: persona.Single,
		FamilyType:    persona.SmallFamily,
	}, kernel.DateOf(now))
	require.NoError(t, err)
	return p
}

func specialPersona(t *testing.T, monthlyCap int, indefinite bool) *persona.Persona {
	t.Helper()

	p, err := regularPersona(t).MarkSpecial(monthlyCap, indefinite, "")
	require.NoError(t, err)
	return p
}

func history(lastDaysAgo, thisMonth, total int) services.History {
	last := now.AddDate(0, 0, -lastDaysAgo)
	return services.History{LastApprovedAt: &last, ThisMonth: thisMonth, Total: total}
}

func TestEligibilityEngine_FirstTime(t *testing.T) {
	engine := services.NewEligibilityEngine()

	t.Run("should accept persona without deliveries", func(t *testing.T) {
		decision, err := engine.Check(regularPersona(t), services.History{}, now)

		require.NoError(t, err)
		assert.True(t, decision.Eligible)
		assert.Equal(t, services.CodeFirstTime, decision.Code)
		assert.Nil(t, decision.DaysRemaining)
		assert.Equal(t, 1, decision.RemainingThisMonth)
	})

	t.Run("should report the special cap as remaining", func(t *testing.T) {
		decision, err := engine.Check(specialPersona(t, 3, false), services.History{}, now)

		require.NoError(t, err)
		assert.Equal(t, services.CodeFirstTime, decision.Code)
		assert.Equal(t, 3, decision.RemainingThisMonth)
	})

	t.Run("should reject unconstructed persona", func(t *testing.T) {
		_, err := engine.Check(&persona.Persona{}, services.History{}, now)

		require.ErrorIs(t, err, persona.ErrPersonaIsNotConstructed)
	})
}

func TestEligibilityEngine_Regular(t *testing.T) {
	engine := services.NewEligibilityEngine()
	p := regularPersona(t)

	t.Run("should stop at the lifetime limit regardless of recency", func(t *testing.T) {
		for _, daysAgo := range []int{0, 29, 30, 400} {
			decision, err := engine.Check(p, history(daysAgo, 0, 6), now)

			require.NoError(t, err)
			assert.False(t, decision.Eligible)
			assert.Equal(t, services.CodeMaxLimit, decision.Code)
			assert.Nil(t, decision.DaysRemaining)
			assert.Equal(t, 0, decision.RemainingThisMonth)
		}
	})

	t.Run("should allow one delivery per month", func(t *testing.T) {
		decision, err := engine.Check(p, history(10, 1, 2), now)

		require.NoError(t, err)
		assert.False(t, decision.Eligible)
		assert.Equal(t, services.CodeAlreadyReceivedMonth, decision.Code)
		require.NotNil(t, decision.DaysRemaining)
		assert.Equal(t, 16, *decision.DaysRemaining)
		assert.Equal(t, 1, decision.DeliveriesThisMonth)
	})

	t.Run("should require 30 days: 29 days ago is one day short", func(t *testing.T) {
		decision, err := engine.Check(p, history(29, 0, 1), now)

		require.NoError(t, err)
		assert.False(t, decision.Eligible)
		assert.Equal(t, services.CodeMinimumTime, decision.Code)
		require.NotNil(t, decision.DaysRemaining)
		assert.Equal(t, 1, *decision.DaysRemaining)
	})

	t.Run("should accept exactly 30 days later", func(t *testing.T) {
		decision, err := engine.Check(p, history(30, 0, 1), now)

		require.NoError(t, err)
		assert.True(t, decision.Eligible)
		assert.Equal(t, services.CodeEligible, decision.Code)
		assert.Nil(t, decision.DaysRemaining)
		assert.Equal(t, 1, decision.RemainingThisMonth)
	})

	t.Run("should count calendar days, not elapsed hours", func(t *testing.T) {
		late := time.Date(2025, time.August, 16, 23, 59, 0, 0, time.UTC)
		early := time.Date(2025, time.September, 15, 0, 1, 0, 0, time.UTC)

		decision, err := engine.Check(p, services.History{LastApprovedAt: &late, Total: 1}, early)

		require.NoError(t, err)
		assert.Equal(t, services.CodeEligible, decision.Code)
	})
}

func TestEligibilityEngine_Special(t *testing.T) {
	engine := services.NewEligibilityEngine()

	t.Run("indefinite persona is always eligible", func(t *testing.T) {
		p := specialPersona(t, 0, true)

		for _, h := range []services.History{history(0, 5, 40), history(1, 0, 7), history(100, 1, 1)} {
			decision, err := engine.Check(p, h, now)

			require.NoError(t, err)
			assert.True(t, decision.Eligible)
			assert.Equal(t, services.CodeSpecialIndefinite, decision.Code)
			assert.Equal(t, persona.UnlimitedDeliveries, decision.RemainingThisMonth)
		}
	})

	t.Run("should stop at the monthly cap", func(t *testing.T) {
		p := specialPersona(t, 2, false)

		decision, err := engine.Check(p, history(20, 2, 2), now)

		require.NoError(t, err)
		assert.False(t, decision.Eligible)
		assert.Equal(t, services.CodeSpecialMonthlyLimit, decision.Code)
		require.NotNil(t, decision.DaysRemaining)
		assert.Equal(t, 16, *decision.DaysRemaining)
		assert.Equal(t, 0, decision.RemainingThisMonth)
	})

	t.Run("should require 15 days between deliveries", func(t *testing.T) {
		p := specialPersona(t, 3, false)

		decision, err := engine.Check(p, history(10, 1, 4), now)

		require.NoError(t, err)
		assert.False(t, decision.Eligible)
		assert.Equal(t, services.CodeSpecialMinimumTime, decision.Code)
		require.NotNil(t, decision.DaysRemaining)
		assert.Equal(t, 5, *decision.DaysRemaining)
		assert.Equal(t, 2, decision.RemainingThisMonth)
	})

	t.Run("should ignore the lifetime limit", func(t *testing.T) {
		p := specialPersona(t, 2, false)

		decision, err := engine.Check(p, history(15, 1, 12), now)

		require.NoError(t, err)
		assert.True(t, decision.Eligible)
		assert.Equal(t, services.CodeSpecialEligible, decision.Code)
		assert.Equal(t, 1, decision.RemainingThisMonth)
	})

	t.Run("removing the special case restores regular rules", func(t *testing.T) {
		p := specialPersona(t, 0, true).RemoveSpecial()

		decision, err := engine.Check(p, history(100, 0, 6), now)

		require.NoError(t, err)
		assert.Equal(t, services.CodeMaxLimit, decision.Code)
	})
}

func TestEligibilityEngine_MonthBoundary(t *testing.T) {
	engine := services.NewEligibilityEngine()

	t.Run("should count days to the first of next month from the local day", func(t *testing.T) {
		loc := time.FixedZone("CST", -6*60*60)
		// 2025-10-01 03:00 UTC is still September 30 in loc.
		localNow := time.Date(2025, time.October, 1, 3, 0, 0, 0, time.UTC).In(loc)

		decision, err := engine.Check(regularPersona(t), history(10, 1, 1), localNow)

		require.NoError(t, err)
		require.NotNil(t, decision.DaysRemaining)
		assert.Equal(t, 1, *decision.DaysRemaining)
	})
}

func TestBuildHistory(t *testing.T) {
	t.Run("should summarize approvals", func(t *testing.T) {
		approvals := []time.Time{
			time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC),
			time.Date(2025, time.September, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2025, time.August, 30, 9, 0, 0, 0, time.UTC),
		}

		h := services.BuildHistory(approvals, now)

		assert.Equal(t, 3, h.Total)
		assert.Equal(t, 1, h.ThisMonth)
		require.NotNil(t, h.LastApprovedAt)
		assert.Equal(t, approvals[1], *h.LastApprovedAt)
	})

	t.Run("should place approvals in the month of now's location", func(t *testing.T) {
		loc := time.FixedZone("CST", -6*60*60)
		localNow := time.Date(2025, time.September, 10, 12, 0, 0, 0, loc)
		// September 1 02:00 UTC is August 31 in loc.
		approvals := []time.Time{time.Date(2025, time.September, 1, 2, 0, 0, 0, time.UTC)}

		h := services.BuildHistory(approvals, localNow)

		assert.Equal(t, 0, h.ThisMonth)
		assert.Equal(t, 1, h.Total)
	})

	t.Run("empty history", func(t *testing.T) {
		h := services.BuildHistory(nil, now)

		assert.True(t, h.IsEmpty())
	})
}

func TestMonthBounds(t *testing.T) {
	start, end := services.MonthBounds(now)

	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestTrafficLightOf(t *testing.T) {
	days := func(n int) *int { return &n }

	t.Run("should colour decisions", func(t *testing.T) {
		assert.Equal(t, services.Green, services.TrafficLightOf(services.Decision{Eligible: true}))
		assert.Equal(t, services.Yellow, services.TrafficLightOf(services.Decision{DaysRemaining: days(7)}))
		assert.Equal(t, services.Yellow, services.TrafficLightOf(services.Decision{DaysRemaining: days(1)}))
		assert.Equal(t, services.Red, services.TrafficLightOf(services.Decision{DaysRemaining: days(8)}))
		assert.Equal(t, services.Red, services.TrafficLightOf(services.Decision{Code: services.CodeMaxLimit}))
	})
}
