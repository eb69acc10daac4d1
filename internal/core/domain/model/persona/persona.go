package persona

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/errs"
)

const (
	maxNationalIDLength  = 20
	maxNameLength        = 100
	maxPhoneLength       = 15
	maxServiceTeamLength = 50
)

var ErrPersonaIsNotConstructed = errors.New("Persona must be created via NewPersona or RestorePersona")

// Profile is the registration data of a beneficiary.
type Profile struct {
	NationalID     string
	Foreign        bool
	FirstName      string
	LastName       string
	BirthDate      kernel.Date
	MaritalStatus  MaritalStatus
	FamilyType     FamilyType
	Phone          string
	Address        string
	ServiceTeam    string // church team the household serves in, free text
	MembersServing int
	Dependents     int
}

// Persona is a registered beneficiary.
//
// Persona values are never mutated after construction: MarkSpecial,
// RemoveSpecial and WithAge return a new Persona and leave the receiver as it was,
// so callers can hand both versions to the audit log.
type Persona struct {
	id      kernel.UUID
	profile Profile
	age     int
	special SpecialCase

	isConstructed bool
}

// NewPersona registers a beneficiary. Age is derived from the birth date as of today.
func NewPersona(id kernel.UUID, profile Profile, today kernel.Date) (*Persona, error) {
	p := &Persona{special: RegularCase(), isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setProfile(profile),
		validateBirthDate(profile.BirthDate, today),
	); err != nil {
		return nil, err
	}

	p.age = today.YearsSince(profile.BirthDate)
	return p, nil
}

// RestorePersona rebuilds a persona from storage, keeping the stored age.
func RestorePersona(id kernel.UUID, profile Profile, age int, special SpecialCase) (*Persona, error) {
	p := &Persona{special: special, isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setProfile(profile),
		p.setAge(age),
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Persona) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPersonaIsNotConstructed
	}
	return nil
}

func (p *Persona) IsEqual(other *Persona) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Persona) ID() kernel.UUID {
	return p.id
}

// Profile returns a copy of the registration data.
func (p *Persona) Profile() Profile {
	return p.profile
}

func (p *Persona) NationalID() string {
	return p.profile.NationalID
}

func (p *Persona) FullName() string {
	return p.profile.FirstName + " " + p.profile.LastName
}

func (p *Persona) Age() int {
	return p.age
}

func (p *Persona) SpecialCase() SpecialCase {
	return p.special
}

// MarkSpecial returns a copy of p flagged as a special case.
func (p *Persona) MarkSpecial(monthlyCap int, indefinite bool, notes string) (*Persona, error) {
	special, err := NewSpecialCase(monthlyCap, indefinite, notes)
	if err != nil {
		return nil, err
	}

	next := *p
	next.special = special
	return &next, nil
}

// RemoveSpecial returns a copy of p back on the regular rules, notes cleared.
func (p *Persona) RemoveSpecial() *Persona {
	next := *p
	next.special = RegularCase()
	return &next
}

// WithAge returns a copy of p with the age recomputed for today and reports
// whether it differs from the stored one.
func (p *Persona) WithAge(today kernel.Date) (*Persona, bool) {
	age := today.YearsSince(p.profile.BirthDate)
	if age == p.age {
		return p, false
	}

	next := *p
	next.age = age
	return &next, true
}

func (p *Persona) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Persona) setProfile(profile Profile) error {
	profile.NationalID = strings.TrimSpace(profile.NationalID)
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)

	if err := errors.Join(
		requiredText("national id", profile.NationalID, maxNationalIDLength),
		requiredText("first name", profile.FirstName, maxNameLength),
		requiredText("last name", profile.LastName, maxNameLength),
		optionalText("phone", profile.Phone, maxPhoneLength),
		optionalText("service team", profile.ServiceTeam, maxServiceTeamLength),
		profile.BirthDate.Validate(),
		profile.MaritalStatus.Validate(),
		profile.FamilyType.Validate(),
		nonNegative("members serving", profile.MembersServing),
		nonNegative("dependents", profile.Dependents),
	); err != nil {
		return err
	}

	p.profile = profile
	return nil
}

func (p *Persona) setAge(age int) error {
	if err := nonNegative("age", age); err != nil {
		return err
	}
	p.age = age
	return nil
}

func validateBirthDate(birth, today kernel.Date) error {
	if birth.Validate() != nil || today.Validate() != nil {
		return nil
	}
	if birth.After(today) {
		return errs.NewValueIsInvalidErrorWithCause(
			"birth date is invalid", fmt.Errorf("%s is in the future", birth))
	}
	return nil
}

func requiredText(param, value string, maxLen int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return optionalText(param, value, maxLen)
}

func optionalText(param, value string, maxLen int) error {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 0, maxLen)
	}
	return nil
}

func nonNegative(param string, value int) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param+" is invalid", fmt.Errorf("%d is negative", value))
	}
	return nil
}
