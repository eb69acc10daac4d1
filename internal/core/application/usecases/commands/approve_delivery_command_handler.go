package commands

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/core/ports"
)

// ApproveDeliveryCommandHandler runs the eligibility check and inserts the
// delivery in one transaction. The persona row is locked first, so two
// concurrent approvals for the same persona cannot both see an eligible history.
type ApproveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	engine     services.EligibilityEngine
	rotation   team.Rotation
	clock      kernel.Clock
	metrics    ports.Metrics
}

func NewApproveDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	engine services.EligibilityEngine,
	rotation team.Rotation,
	clock kernel.Clock,
	metrics ports.Metrics,
) ApproveDeliveryCommandHandler {
	return ApproveDeliveryCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		rotation:   rotation,
		clock:      clock,
		metrics:    metrics,
	}
}

// Handle returns the decision that allowed the approval, or a
// *NotEligibleError holding the decision that refused it.
func (h *ApproveDeliveryCommandHandler) Handle(ctx context.Context, cmd ApproveDeliveryCommand) (services.Decision, error) {
	if err := cmd.Validate(); err != nil {
		return services.Decision{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Decision{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.PersonaRepository().GetForUpdate(ctx, cmd.PersonaID())
	if err != nil {
		return services.Decision{}, err
	}

	now := h.clock.Now()
	deliveries := uow.DeliveryRepository()
	history, err := deliveries.History(ctx, p.ID(), now)
	if err != nil {
		return services.Decision{}, err
	}

	decision, err := h.engine.Check(p, history, now)
	if err != nil {
		return services.Decision{}, err
	}
	h.metrics.EligibilityChecked(string(decision.Code), decision.Eligible)

	if !decision.Eligible {
		return decision, &NotEligibleError{Decision: decision}
	}

	responsible := cmd.Team()
	if responsible == team.Unknown {
		responsible = h.rotation.TeamOnDuty(kernel.DateOf(now))
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(), p.ID(), cmd.Folio(), cmd.AidType(), responsible, cmd.Actor(), now, cmd.Notes(),
	)
	if err != nil {
		return services.Decision{}, err
	}

	if err = deliveries.Add(ctx, d); err != nil {
		return services.Decision{}, err
	}

	if err = record(ctx, uow.AuditLog(), audit.Change{
		Actor:    cmd.Actor(),
		Action:   audit.ActionApprove,
		Table:    audit.TableDeliveries,
		RecordID: d.ID(),
		After:    d.Snapshot(),
		Reason:   decision.Reason,
	}, now); err != nil {
		return services.Decision{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Decision{}, err
	}

	h.metrics.DeliveryTransitioned(delivery.Approved.Value())
	return decision, nil
}
