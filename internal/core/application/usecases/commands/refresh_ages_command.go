package commands

import (
	"errors"

	"aidtracker/internal/pkg/guard"
)

var ErrRefreshAgesCommandIsNotConstructed = errors.New(
	"RefreshAgesCommand must be created via NewRefreshAgesCommand constructor",
)

// RefreshAgesCommand recomputes the stored age of every persona.
// It takes no parameters and is scheduled once a day.
type RefreshAgesCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshAgesCommand() RefreshAgesCommand {
	return RefreshAgesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c RefreshAgesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshAgesCommandIsNotConstructed)
}
