package commands

import (
	"errors"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/errs"
	"aidtracker/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves a delivery one workflow step to target.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	actor      *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceDeliveryCommand(deliveryID kernel.UUID, target delivery.Status, actor *kernel.UUID) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

func (c AdvanceDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AdvanceDeliveryCommand) Target() delivery.Status {
	return c.target
}

func (c AdvanceDeliveryCommand) Actor() *kernel.UUID {
	return c.actor
}

func (c *AdvanceDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

// setTarget rejects Approved, which is only reachable by approval.
func (c *AdvanceDeliveryCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == delivery.Approved {
		return errs.NewValueIsInvalidError("target")
	}

	c.target = target
	return nil
}
