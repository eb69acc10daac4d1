package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
)

// MarkPersonaSpecialCommandHandler replaces the persona's special-case fields
// and audits the before and after states.
type MarkPersonaSpecialCommandHandler struct {
	uowFactory PersonaUoWFactory
	clock      kernel.Clock
}

func NewMarkPersonaSpecialCommandHandler(uowFactory PersonaUoWFactory, clock kernel.Clock) MarkPersonaSpecialCommandHandler {
	return MarkPersonaSpecialCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *MarkPersonaSpecialCommandHandler) Handle(ctx context.Context, cmd MarkPersonaSpecialCommand) error {
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

	updated, err := current.MarkSpecial(cmd.MonthlyCap(), cmd.Indefinite(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, updated); err != nil {
		return err
	}

	if err = record(ctx, uow.AuditLog(), audit.Change{
		Actor:    cmd.Actor(),
		Action:   audit.ActionMarkSpecial,
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
