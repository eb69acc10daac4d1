package commands

import (
	"errors"

	"aidtracker/internal/pkg/guard"
)

var ErrSeedTeamsCommandIsNotConstructed = errors.New(
	"SeedTeamsCommand must be created via NewSeedTeamsCommand constructor",
)

// SeedTeamsCommand makes sure every team of the rotation has a row.
// Running it again is a no-op.
type SeedTeamsCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedTeamsCommand() SeedTeamsCommand {
	return SeedTeamsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c SeedTeamsCommand) Validate() error {
	return c.guard.Validate(ErrSeedTeamsCommandIsNotConstructed)
}
