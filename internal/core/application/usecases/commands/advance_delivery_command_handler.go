package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/ports"
)

// AdvanceDeliveryCommandHandler applies one workflow transition under a row lock.
// A rejected transition leaves the stored record untouched and is not audited.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	metrics    ports.Metrics
}

func NewAdvanceDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock kernel.Clock,
	metrics ports.Metrics,
) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		metrics:    metrics,
	}
}

func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	repo := uow.DeliveryRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	before := d.Snapshot()
	if err = d.Transition(cmd.Target(), cmd.Actor(), now); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	if err = record(ctx, uow.AuditLog(), audit.Change{
		Actor:    cmd.Actor(),
		Action:   audit.ActionTransition,
		Table:    audit.TableDeliveries,
		RecordID: d.ID(),
		Before:   before,
		After:    d.Snapshot(),
	}, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.DeliveryTransitioned(cmd.Target().Value())
	return nil
}
