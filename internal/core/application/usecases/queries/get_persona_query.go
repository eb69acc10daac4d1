package queries

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/guard"
)

var ErrGetPersonaQueryIsNotConstructed = errors.New(
	"GetPersonaQuery must be created via NewGetPersonaQuery constructor",
)

// GetPersonaQuery reads one beneficiary record.
type GetPersonaQuery struct { //nolint:recvcheck //using for validation
	personaID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPersonaQuery(personaID kernel.UUID) (GetPersonaQuery, error) {
	query := GetPersonaQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPersonaID(personaID); err != nil {
		return GetPersonaQuery{}, err
	}
	return query, nil
}

func (q GetPersonaQuery) Validate() error {
	return q.guard.Validate(ErrGetPersonaQueryIsNotConstructed)
}

func (q GetPersonaQuery) PersonaID() kernel.UUID {
	return q.personaID
}

func (q *GetPersonaQuery) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.personaID = id
	return nil
}

// GetPersonaQueryResponse keeps the stored enumeration values
// (e.g. "union_libre", "mediana") rather than display labels.
type GetPersonaQueryResponse struct {
	ID                  kernel.UUID
	NationalID          string
	Foreign             bool
	FirstName           string
	LastName            string
	BirthDate           kernel.Date
	Age                 int
	MaritalStatus       string
	FamilyType          string
	Phone               string
	Address             string
	ServiceTeam         string
	MembersServing      int
	Dependents          int
	Special             bool
	MonthlyCap          int
	SpecialIndefinite   bool
	SpecialObservations string
}
