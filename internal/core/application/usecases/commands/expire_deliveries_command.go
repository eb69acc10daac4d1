package commands

import (
	"errors"

	"aidtracker/internal/pkg/guard"
)

var ErrExpireDeliveriesCommandIsNotConstructed = errors.New(
	"ExpireDeliveriesCommand must be created via NewExpireDeliveriesCommand constructor",
)

// ExpireDeliveriesCommand stores the expired status on records whose pickup
// window has closed. Reads already derive expiry from the clock, so the sweep
// only keeps stored statuses accurate for reporting.
type ExpireDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireDeliveriesCommand() ExpireDeliveriesCommand {
	return ExpireDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ExpireDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrExpireDeliveriesCommandIsNotConstructed)
}
