package commands

import (
	"errors"
	"fmt"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/pkg/guard"
)

var (
	ErrApproveDeliveryCommandIsNotConstructed = errors.New(
		"ApproveDeliveryCommand must be created via NewApproveDeliveryCommand constructor",
	)

	// ErrPersonaIsNotEligible is matched by every NotEligibleError.
	ErrPersonaIsNotEligible = errors.New("persona is not eligible for a delivery")
)

// NotEligibleError carries the decision that blocked an approval.
type NotEligibleError struct {
	Decision services.Decision
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrPersonaIsNotEligible, e.Decision.Reason, e.Decision.Code)
}

func (e *NotEligibleError) Unwrap() error {
	return ErrPersonaIsNotEligible
}

// ApproveDeliveryCommand opens a new delivery log record for a persona.
//
// Example:
//
//	cmd, err := NewApproveDeliveryCommand(kernel.NewUUID(), personaID, "F-0042",
//	    delivery.Food, team.Unknown, "", &userID)
//	if err != nil {
//	    return err
//	}
//
//	decision, err := handler.Handle(ctx, cmd)
//	var notEligible *NotEligibleError
//	if errors.As(err, &notEligible) {
//	    fmt.Println(notEligible.Decision.Reason)
//	}
type ApproveDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	personaID  kernel.UUID
	folio      string
	aidType    delivery.AidType
	team       team.Code
	notes      string
	actor      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveDeliveryCommand validates the identifiers and the aid type.
// team.Unknown assigns the record to the team on duty at approval time.
func NewApproveDeliveryCommand(
	deliveryID, personaID kernel.UUID,
	folio string,
	aidType delivery.AidType,
	responsible team.Code,
	notes string,
	actor *kernel.UUID,
) (ApproveDeliveryCommand, error) {
	cmd := ApproveDeliveryCommand{
		folio: folio,
		notes: notes,
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPersonaID(personaID),
		cmd.setAidType(aidType),
		cmd.setTeam(responsible),
	); err != nil {
		return ApproveDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ApproveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveryCommandIsNotConstructed)
}

func (c ApproveDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ApproveDeliveryCommand) PersonaID() kernel.UUID {
	return c.personaID
}

func (c ApproveDeliveryCommand) Folio() string {
	return c.folio
}

func (c ApproveDeliveryCommand) AidType() delivery.AidType {
	return c.aidType
}

// Team is team.Unknown when the team on duty should be used.
func (c ApproveDeliveryCommand) Team() team.Code {
	return c.team
}

func (c ApproveDeliveryCommand) Notes() string {
	return c.notes
}

func (c ApproveDeliveryCommand) Actor() *kernel.UUID {
	return c.actor
}

func (c *ApproveDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *ApproveDeliveryCommand) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.personaID = id
	return nil
}

func (c *ApproveDeliveryCommand) setAidType(aidType delivery.AidType) error {
	if err := aidType.Validate(); err != nil {
		return err
	}

	c.aidType = aidType
	return nil
}

func (c *ApproveDeliveryCommand) setTeam(code team.Code) error {
	if code != team.Unknown {
		if err := code.Validate(); err != nil {
			return err
		}
	}

	c.team = code
	return nil
}
