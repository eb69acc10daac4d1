package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
)

// RegisterPersonaCommandHandler stores a new persona with its age computed
// from the birth date as of today.
type RegisterPersonaCommandHandler struct {
	uowFactory PersonaUoWFactory
	clock      kernel.Clock
}

func NewRegisterPersonaCommandHandler(uowFactory PersonaUoWFactory, clock kernel.Clock) RegisterPersonaCommandHandler {
	return RegisterPersonaCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RegisterPersonaCommandHandler) Handle(ctx context.Context, cmd RegisterPersonaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	p, err := persona.NewPersona(cmd.PersonaID(), cmd.Profile(), kernel.DateOf(now))
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PersonaRepository().Add(ctx, p); err != nil {
		return err
	}

	if err = record(ctx, uow.AuditLog(), audit.Change{
		Actor:    cmd.Actor(),
		Action:   audit.ActionCreate,
		Table:    audit.TablePersonas,
		RecordID: p.ID(),
		After:    p.Snapshot(),
	}, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
