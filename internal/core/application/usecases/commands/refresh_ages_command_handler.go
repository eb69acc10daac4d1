package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
)

// RefreshAgesCommandHandler writes back the personas whose age changed since
// the last run. All updates share one transaction.
type RefreshAgesCommandHandler struct {
	uowFactory PersonaUoWFactory
	clock      kernel.Clock
}

func NewRefreshAgesCommandHandler(uowFactory PersonaUoWFactory, clock kernel.Clock) RefreshAgesCommandHandler {
	return RefreshAgesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the number of personas updated.
func (h *RefreshAgesCommandHandler) Handle(ctx context.Context, cmd RefreshAgesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PersonaRepository()
	personas, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	today := kernel.DateOf(now)

	updated := 0
	for _, current := range personas {
		next, changed := current.WithAge(today)
		if !changed {
			continue
		}

		if err = repo.Update(ctx, next); err != nil {
			return 0, err
		}

		if err = record(ctx, uow.AuditLog(), audit.Change{
			Action:   audit.ActionRefreshAge,
			Table:    audit.TablePersonas,
			RecordID: next.ID(),
			Before:   current.Snapshot(),
			After:    next.Snapshot(),
		}, now); err != nil {
			return 0, err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
