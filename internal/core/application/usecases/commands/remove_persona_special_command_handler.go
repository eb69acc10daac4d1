package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
)

type RemovePersonaSpecialCommandHandler struct {
	uowFactory PersonaUoWFactory
	clock      kernel.Clock
}

func NewRemovePersonaSpecialCommandHandler(uowFactory PersonaUoWFactory, clock kernel.Clock) RemovePersonaSpecialCommandHandler {
	return RemovePersonaSpecialCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle resets the special-case fields. Removing the flag from a regular
// persona is allowed and still audited.
func (h *RemovePersonaSpecialCommandHandler) Handle(ctx context.Context, cmd RemovePersonaSpecialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PersonaRepository()
	current, err := repo.GetForUpdate(ctx, cmd.PersonaID())
	if err != nil {
		return err
	}

	updated := current.RemoveSpecial()
	if err = repo.Update(ctx, updated); err != nil {
		return err
	}

	if err = record(ctx, uow.AuditLog(), audit.Change{
		Actor:    cmd.Actor(),
		Action:   audit.ActionRemoveSpecial,
		Table:    audit.TablePersonas,
		RecordID: updated.ID(),
		Before:   current.Snapshot(),
		After:    updated.Snapshot(),
		Reason:   cmd.Reason(),
	}, h.clock.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
