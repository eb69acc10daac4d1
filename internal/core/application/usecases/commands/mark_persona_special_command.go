package commands

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/pkg/guard"
)

var ErrMarkPersonaSpecialCommandIsNotConstructed = errors.New(
	"MarkPersonaSpecialCommand must be created via NewMarkPersonaSpecialCommand constructor",
)

// MarkPersonaSpecialCommand grants a persona the special-case rules: a
// monthly cap of 1 to 3 deliveries, or no cap at all when indefinite.
type MarkPersonaSpecialCommand struct { //nolint:recvcheck //using for validation
	personaID  kernel.UUID
	monthlyCap int
	indefinite bool
	notes      string
	reason     string
	actor      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPersonaSpecialCommand validates the identifier and, unless the case
// is indefinite, the cap. A zero cap means persona.DefaultSpecialMonthlyCap.
func NewMarkPersonaSpecialCommand(
	personaID kernel.UUID,
	monthlyCap int,
	indefinite bool,
	notes, reason string,
	actor *kernel.UUID,
) (MarkPersonaSpecialCommand, error) {
	if monthlyCap == 0 {
		monthlyCap = persona.DefaultSpecialMonthlyCap
	}

	cmd := MarkPersonaSpecialCommand{
		indefinite: indefinite,
		notes:      notes,
		reason:     reason,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPersonaID(personaID),
		cmd.setMonthlyCap(monthlyCap, indefinite),
	); err != nil {
		return MarkPersonaSpecialCommand{}, err
	}

	return cmd, nil
}

func (c MarkPersonaSpecialCommand) Validate() error {
	return c.guard.Validate(ErrMarkPersonaSpecialCommandIsNotConstructed)
}

func (c MarkPersonaSpecialCommand) PersonaID() kernel.UUID {
	return c.personaID
}

func (c MarkPersonaSpecialCommand) MonthlyCap() int {
	return c.monthlyCap
}

func (c MarkPersonaSpecialCommand) Indefinite() bool {
	return c.indefinite
}

func (c MarkPersonaSpecialCommand) Notes() string {
	return c.notes
}

// Reason is stored on the audit entry.
func (c MarkPersonaSpecialCommand) Reason() string {
	return c.reason
}

func (c MarkPersonaSpecialCommand) Actor() *kernel.UUID {
	return c.actor
}

func (c *MarkPersonaSpecialCommand) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.personaID = id
	return nil
}

func (c *MarkPersonaSpecialCommand) setMonthlyCap(monthlyCap int, indefinite bool) error {
	if _, err := persona.NewSpecialCase(monthlyCap, indefinite, ""); err != nil {
		return err
	}

	c.monthlyCap = monthlyCap
	return nil
}
