// Package queries contains read operations. Storage-backed queries read the
// tables directly through GORM and return flat read models; the rotation
// queries are computed without storage.
package queries

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/pkg/guard"
)

var ErrCheckEligibilityQueryIsNotConstructed = errors.New(
	"CheckEligibilityQuery must be created via NewCheckEligibilityQuery constructor",
)

// CheckEligibilityQuery asks whether a persona may receive a delivery now.
// Nothing is locked or written; the approval command repeats the check
// under a lock.
//
// Example:
//
//	query, err := NewCheckEligibilityQuery(personaID)
//	if err != nil {
//	    return err
//	}
//
//	res, err := handler.Handle(ctx, query)
//	fmt.Println(res.Decision.Reason, res.TrafficLight)
type CheckEligibilityQuery struct { //nolint:recvcheck //using for validation
	personaID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckEligibilityQuery(personaID kernel.UUID) (CheckEligibilityQuery, error) {
	query := CheckEligibilityQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPersonaID(personaID); err != nil {
		return CheckEligibilityQuery{}, err
	}
	return query, nil
}

func (q CheckEligibilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckEligibilityQueryIsNotConstructed)
}

func (q CheckEligibilityQuery) PersonaID() kernel.UUID {
	return q.personaID
}

func (q *CheckEligibilityQuery) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.personaID = id
	return nil
}

type CheckEligibilityQueryResponse struct {
	PersonaID    kernel.UUID
	FullName     string
	Special      bool
	Decision     services.Decision
	TrafficLight services.TrafficLight
}
