package commands

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/guard"
)

var ErrRemovePersonaSpecialCommandIsNotConstructed = errors.New(
	"RemovePersonaSpecialCommand must be created via NewRemovePersonaSpecialCommand constructor",
)

// RemovePersonaSpecialCommand returns a persona to the regular rules.
type RemovePersonaSpecialCommand struct { //nolint:recvcheck //using for validation
	personaID kernel.UUID
	reason    string
	actor     *kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemovePersonaSpecialCommand(personaID kernel.UUID, reason string, actor *kernel.UUID) (RemovePersonaSpecialCommand, error) {
	cmd := RemovePersonaSpecialCommand{
		reason: reason,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setPersonaID(personaID); err != nil {
		return RemovePersonaSpecialCommand{}, err
	}

	return cmd, nil
}

func (c RemovePersonaSpecialCommand) Validate() error {
	return c.guard.Validate(ErrRemovePersonaSpecialCommandIsNotConstructed)
}

func (c RemovePersonaSpecialCommand) PersonaID() kernel.UUID {
	return c.personaID
}

func (c RemovePersonaSpecialCommand) Reason() string {
	return c.reason
}

func (c RemovePersonaSpecialCommand) Actor() *kernel.UUID {
	return c.actor
}

func (c *RemovePersonaSpecialCommand) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.personaID = id
	return nil
}
