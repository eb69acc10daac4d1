package commands

import (
	"context"
	"errors"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/errs"
)

type SeedTeamsCommandHandler struct {
	uowFactory TeamUoWFactory
	clock      kernel.Clock
}

func NewSeedTeamsCommandHandler(uowFactory TeamUoWFactory, clock kernel.Clock) SeedTeamsCommandHandler {
	return SeedTeamsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle inserts the missing teams and returns how many were created.
func (h *SeedTeamsCommandHandler) Handle(ctx context.Context, cmd SeedTeamsCommand) (int, error) {
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

	repo := uow.TeamRepository()
	now := h.clock.Now()

	created := 0
	for _, code := range team.AllCodes() {
		_, err := repo.Get(ctx, code)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return 0, err
		}

		t, err := team.NewTeam(kernel.NewUUID(), code)
		if err != nil {
			return 0, err
		}

		if err = repo.Add(ctx, t); err != nil {
			return 0, err
		}

		if err = record(ctx, uow.AuditLog(), audit.Change{
			Action:   audit.ActionSeed,
			Table:    audit.TableTeams,
			RecordID: t.ID(),
			After:    t.Snapshot(),
		}, now); err != nil {
			return 0, err
		}
		created++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return created, nil
}
