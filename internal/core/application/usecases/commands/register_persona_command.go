package commands

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/pkg/guard"
)

var ErrRegisterPersonaCommandIsNotConstructed = errors.New(
	"RegisterPersonaCommand must be created via NewRegisterPersonaCommand constructor",
)

// RegisterPersonaCommand registers a new beneficiary.
//
// Example:
//
//	cmd, err := NewRegisterPersonaCommand(kernel.NewUUID(), profile, actor)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // national ID already registered
//	}
type RegisterPersonaCommand struct { //nolint:recvcheck //using for validation
	personaID kernel.UUID
	profile   persona.Profile
	actor     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterPersonaCommand checks the identifier. The profile is validated
// by the domain when the persona is built.
func NewRegisterPersonaCommand(
	personaID kernel.UUID,
	profile persona.Profile,
	actor *kernel.UUID,
) (RegisterPersonaCommand, error) {
	cmd := RegisterPersonaCommand{
		profile: profile,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setPersonaID(personaID); err != nil {
		return RegisterPersonaCommand{}, err
	}

	return cmd, nil
}

func (c RegisterPersonaCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPersonaCommandIsNotConstructed)
}

func (c RegisterPersonaCommand) PersonaID() kernel.UUID {
	return c.personaID
}

func (c RegisterPersonaCommand) Profile() persona.Profile {
	return c.profile
}

// Actor is the user registering the persona, nil when unknown.
func (c RegisterPersonaCommand) Actor() *kernel.UUID {
	return c.actor
}

func (c *RegisterPersonaCommand) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.personaID = id
	return nil
}
