package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/ports"
)

type ExpireDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	metrics    ports.Metrics
}

func NewExpireDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock kernel.Clock,
	metrics ports.Metrics,
) ExpireDeliveriesCommandHandler {
	return ExpireDeliveriesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		metrics:    metrics,
	}
}

// Handle returns the number of records marked expired.
func (h *ExpireDeliveriesCommandHandler) Handle(ctx context.Context, cmd ExpireDeliveriesCommand) (int, error) {
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

	now := h.clock.Now()
	repo := uow.DeliveryRepository()
	expirable, err := repo.GetExpirable(ctx, now)
	if err != nil {
		return 0, err
	}

	for _, d := range expirable {
		before := d.Snapshot()
		if err = d.Transition(delivery.Expired, nil, now); err != nil {
			return 0, err
		}

		if err = repo.Update(ctx, d); err != nil {
			return 0, err
		}

		if err = record(ctx, uow.AuditLog(), audit.Change{
			Action:   audit.ActionExpire,
			Table:    audit.TableDeliveries,
			RecordID: d.ID(),
			Before:   before,
			After:    d.Snapshot(),
		}, now); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for range expirable {
		h.metrics.DeliveryTransitioned(delivery.Expired.Value())
	}
	return len(expirable), nil
}
