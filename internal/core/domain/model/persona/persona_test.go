package persona_test

import (
	"strings"
	"testing"
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = kernel.MustNewDate(2025, time.September, 10)

func validProfile() persona.Profile {
	return persona.Profile{
		NationalID:     "0801-1990-00001",
		FirstName:      "María",
		LastName:       "López",
		BirthDate:      kernel.MustNewDate(1990, time.October, 1),
		MaritalStatus:  persona.Married,
		FamilyType:     persona.MediumFamily,
		Phone:          "9999-0000",
		Address:        "Colonia Kennedy",
		ServiceTeam:    "alabanza",
		MembersServing: 2,
		Dependents:     3,
	}
}

func TestNewPersona(t *testing.T) {
	t.Run("should register a regular persona with computed age", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := persona.NewPersona(id, validProfile(), today)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, 34, p.Age())
		assert.Equal(t, "María López", p.FullName())
		assert.False(t, p.SpecialCase().IsSpecial())
		assert.Equal(t, persona.RegularMonthlyCap, p.SpecialCase().MonthlyCap())
	})

	t.Run("should trim identity fields", func(t *testing.T) {
		profile := validProfile()
		profile.NationalID = "  0801-1990-00001 "

		p, err := persona.NewPersona(kernel.NewUUID(), profile, today)

		require.NoError(t, err)
		assert.Equal(t, "0801-1990-00001", p.NationalID())
	})

	t.Run("should reject birth dates in the future", func(t *testing.T) {
		profile := validProfile()
		profile.BirthDate = today.AddDays(1)

		_, err := persona.NewPersona(kernel.NewUUID(), profile, today)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "birth date is invalid")
	})

	t.Run("should join every validation error", func(t *testing.T) {
		profile := persona.Profile{
			NationalID: strings.Repeat("9", 21),
			Dependents: -1,
		}

		p, err := persona.NewPersona(kernel.UUID{}, profile, today)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "national id length")
		assert.Contains(t, err.Error(), "value is required: first name")
		assert.Contains(t, err.Error(), "value is required: last name")
		assert.Contains(t, err.Error(), "marital status is invalid")
		assert.Contains(t, err.Error(), "family type is invalid")
		assert.Contains(t, err.Error(), "dependents is invalid")
		assert.Contains(t, err.Error(), "date must be created")
	})
}

func TestRestorePersona(t *testing.T) {
	t.Run("should keep the stored age and special case", func(t *testing.T) {
		special := persona.RestoreSpecialCase(true, 3, false, "viuda con 5 hijos")

		p, err := persona.RestorePersona(kernel.NewUUID(), validProfile(), 30, special)

		require.NoError(t, err)
		assert.Equal(t, 30, p.Age())
		assert.Equal(t, 3, p.SpecialCase().AllowedPerMonth())
	})

	t.Run("should reject negative age", func(t *testing.T) {
		_, err := persona.RestorePersona(kernel.NewUUID(), validProfile(), -1, persona.RegularCase())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p persona.Persona

		assert.Equal(t, persona.ErrPersonaIsNotConstructed, p.Validate())
	})
}

func TestPersona_MarkSpecial(t *testing.T) {
	base, err := persona.NewPersona(kernel.NewUUID(), validProfile(), today)
	require.NoError(t, err)

	t.Run("should return a special copy and leave the original untouched", func(t *testing.T) {
		marked, err := base.MarkSpecial(2, false, "madre soltera")

		require.NoError(t, err)
		assert.True(t, marked.SpecialCase().IsSpecial())
		assert.Equal(t, 2, marked.SpecialCase().MonthlyCap())
		assert.Equal(t, "madre soltera", marked.SpecialCase().Notes())
		assert.True(t, marked.IsEqual(base))

		assert.False(t, base.SpecialCase().IsSpecial())
		assert.Equal(t, persona.RegularMonthlyCap, base.SpecialCase().MonthlyCap())
	})

	t.Run("should force the unlimited cap when indefinite", func(t *testing.T) {
		marked, err := base.MarkSpecial(1, true, "")

		require.NoError(t, err)
		assert.True(t, marked.SpecialCase().IsIndefinite())
		assert.Equal(t, persona.UnlimitedDeliveries, marked.SpecialCase().MonthlyCap())
		assert.Equal(t, persona.UnlimitedDeliveries, marked.SpecialCase().AllowedPerMonth())
	})

	t.Run("should reject caps outside 1..3", func(t *testing.T) {
		for _, monthlyCap := range []int{0, 4, -1} {
			marked, err := base.MarkSpecial(monthlyCap, false, "")

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, marked)
		}
	})
}

func TestPersona_RemoveSpecial(t *testing.T) {
	base, err := persona.NewPersona(kernel.NewUUID(), validProfile(), today)
	require.NoError(t, err)
	marked, err := base.MarkSpecial(3, true, "temporal")
	require.NoError(t, err)

	cleared := marked.RemoveSpecial()

	assert.Equal(t, persona.RegularCase(), cleared.SpecialCase())
	assert.Empty(t, cleared.SpecialCase().Notes())
	assert.False(t, cleared.SpecialCase().IsIndefinite())
	assert.True(t, marked.SpecialCase().IsIndefinite(), "original stays special")
}

func TestPersona_WithAge(t *testing.T) {
	base, err := persona.NewPersona(kernel.NewUUID(), validProfile(), today)
	require.NoError(t, err)

	t.Run("should report no change before the birthday", func(t *testing.T) {
		same, changed := base.WithAge(kernel.MustNewDate(2025, time.September, 30))

		assert.False(t, changed)
		assert.Same(t, base, same)
	})

	t.Run("should bump the age on the birthday", func(t *testing.T) {
		older, changed := base.WithAge(kernel.MustNewDate(2025, time.October, 1))

		assert.True(t, changed)
		assert.Equal(t, 35, older.Age())
		assert.Equal(t, 34, base.Age())
	})
}

func TestSpecialCase_AllowedPerMonth(t *testing.T) {
	assert.Equal(t, 1, persona.RegularCase().AllowedPerMonth())
	assert.Equal(t, 1, persona.RestoreSpecialCase(false, 3, false, "").AllowedPerMonth(), "cap ignored unless special")
	assert.False(t, persona.RestoreSpecialCase(false, 3, true, "").IsIndefinite(), "indefinite ignored unless special")
	assert.Equal(t, 2, persona.RestoreSpecialCase(true, 2, false, "").AllowedPerMonth())
}

func TestEnumerations(t *testing.T) {
	t.Run("marital status round trips through storage values", func(t *testing.T) {
		for _, value := range []string{"soltero", "casado", "union_libre", "viudo", "divorciado"} {
			status, err := persona.ParseMaritalStatus(value)

			require.NoError(t, err)
			assert.Equal(t, value, status.Value())
		}
		assert.Equal(t, "Unión Libre", persona.CommonLaw.String())

		_, err := persona.ParseMaritalStatus("comprometido")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("family type round trips through storage values", func(t *testing.T) {
		for _, value := range []string{"pequeña", "mediana", "grande"} {
			ft, err := persona.ParseFamilyType(value)

			require.NoError(t, err)
			assert.Equal(t, value, ft.Value())
		}
		assert.Equal(t, "Grande (7+ miembros)", persona.LargeFamily.String())

		_, err := persona.ParseFamilyType("enorme")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPersona_Snapshot(t *testing.T) {
	p, err := persona.NewPersona(kernel.NewUUID(), validProfile(), today)
	require.NoError(t, err)
	marked, err := p.MarkSpecial(2, false, "nota")
	require.NoError(t, err)

	snap := marked.Snapshot()

	assert.Equal(t, p.ID().String(), snap.ID)
	assert.Equal(t, "casado", snap.MaritalStatus)
	assert.Equal(t, "mediana", snap.FamilyType)
	assert.Equal(t, "1990-10-01", snap.BirthDate)
	assert.True(t, snap.Special)
	assert.Equal(t, 2, snap.MonthlyCap)
	assert.Equal(t, "nota", snap.SpecialObservations)
}
