package queries

import (
	"context"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/core/ports"
)

// PersonaReader loads a persona without locking it.
type PersonaReader interface {
	Get(ctx context.Context, id kernel.UUID) (*persona.Persona, error)
}

type CheckEligibilityQueryHandler struct {
	personas PersonaReader
	history  ports.DeliveryHistory
	engine   services.EligibilityEngine
	clock    kernel.Clock
	metrics  ports.Metrics
}

func NewCheckEligibilityQueryHandler(
	personas PersonaReader,
	history ports.DeliveryHistory,
	engine services.EligibilityEngine,
	clock kernel.Clock,
	metrics ports.Metrics,
) CheckEligibilityQueryHandler {
	return CheckEligibilityQueryHandler{
		personas: personas,
		history:  history,
		engine:   engine,
		clock:    clock,
		metrics:  metrics,
	}
}

func (h CheckEligibilityQueryHandler) Handle(
	ctx context.Context,
	query CheckEligibilityQuery,
) (CheckEligibilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckEligibilityQueryResponse{}, err
	}

	p, err := h.personas.Get(ctx, query.PersonaID())
	if err != nil {
		return CheckEligibilityQueryResponse{}, err
	}

	now := h.clock.Now()
	history, err := h.history.History(ctx, p.ID(), now)
	if err != nil {
		return CheckEligibilityQueryResponse{}, err
	}

	decision, err := h.engine.Check(p, history, now)
	if err != nil {
		return CheckEligibilityQueryResponse{}, err
	}
	h.metrics.EligibilityChecked(string(decision.Code), decision.Eligible)

	return CheckEligibilityQueryResponse{
		PersonaID:    p.ID(),
		FullName:     p.FullName(),
		Special:      p.SpecialCase().IsSpecial(),
		Decision:     decision,
		TrafficLight: services.TrafficLightOf(decision),
	}, nil
}
