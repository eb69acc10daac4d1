package queries

import (
	"errors"
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/errs"
	"aidtracker/internal/pkg/guard"
)

var ErrListPersonaDeliveriesQueryIsNotConstructed = errors.New(
	"ListPersonaDeliveriesQuery must be created via NewListPersonaDeliveriesQuery constructor",
)

// ListPersonaDeliveriesQuery lists a persona's delivery log, newest first.
// From and To bound the approval day, both inclusive, and are optional.
type ListPersonaDeliveriesQuery struct { //nolint:recvcheck //using for validation
	personaID kernel.UUID
	from      *kernel.Date
	to        *kernel.Date

	guard guard.ConstructorGuard
}

func NewListPersonaDeliveriesQuery(personaID kernel.UUID, from, to *kernel.Date) (ListPersonaDeliveriesQuery, error) {
	query := ListPersonaDeliveriesQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setPersonaID(personaID),
		query.setRange(from, to),
	); err != nil {
		return ListPersonaDeliveriesQuery{}, err
	}
	return query, nil
}

func (q ListPersonaDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListPersonaDeliveriesQueryIsNotConstructed)
}

func (q ListPersonaDeliveriesQuery) PersonaID() kernel.UUID {
	return q.personaID
}

func (q ListPersonaDeliveriesQuery) From() *kernel.Date {
	return q.from
}

func (q ListPersonaDeliveriesQuery) To() *kernel.Date {
	return q.to
}

func (q *ListPersonaDeliveriesQuery) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.personaID = id
	return nil
}

func (q *ListPersonaDeliveriesQuery) setRange(from, to *kernel.Date) error {
	if err := validateRange(from, to); err != nil {
		return err
	}
	q.from, q.to = from, to
	return nil
}

func validateRange(from, to *kernel.Date) error {
	if from != nil && to != nil && to.Before(*from) {
		return errs.NewValueIsInvalidErrorWithCause("date range",
			errors.New("the end date is before the start date"))
	}
	return nil
}

// DeliveryItem is one delivery log row. Status is the effective status at
// query time, so a preparing or ready record past its deadline reads "vencida".
type DeliveryItem struct {
	ID          kernel.UUID
	Folio       string
	AidType     string
	Team        string
	Status      string
	ApprovedAt  time.Time
	PreparedAt  *time.Time
	ReadyAt     *time.Time
	DeliveredAt *time.Time
	ExpiresAt   *time.Time
	Notes       string
}
