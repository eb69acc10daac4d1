package queries

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/guard"
)

var ErrGetTeamDeliveryStatsQueryIsNotConstructed = errors.New(
	"GetTeamDeliveryStatsQuery must be created via NewGetTeamDeliveryStatsQuery constructor",
)

// GetTeamDeliveryStatsQuery counts the deliveries a team is responsible for,
// optionally limited to approvals between From and To, both inclusive.
type GetTeamDeliveryStatsQuery struct { //nolint:recvcheck //using for validation
	team team.Code
	from *kernel.Date
	to   *kernel.Date

	guard guard.ConstructorGuard
}

func NewGetTeamDeliveryStatsQuery(code team.Code, from, to *kernel.Date) (GetTeamDeliveryStatsQuery, error) {
	if err := errors.Join(code.Validate(), validateRange(from, to)); err != nil {
		return GetTeamDeliveryStatsQuery{}, err
	}

	return GetTeamDeliveryStatsQuery{
		team:  code,
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetTeamDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetTeamDeliveryStatsQueryIsNotConstructed)
}

func (q GetTeamDeliveryStatsQuery) Team() team.Code {
	return q.team
}

func (q GetTeamDeliveryStatsQuery) From() *kernel.Date {
	return q.from
}

func (q GetTeamDeliveryStatsQuery) To() *kernel.Date {
	return q.to
}

// GetTeamDeliveryStatsQueryResponse is keyed by stored enumeration values.
// Every status and aid type is present, with zero when unused. Statuses are
// effective at query time.
type GetTeamDeliveryStatsQueryResponse struct {
	Team      team.Code
	Total     int
	ByStatus  map[string]int
	ByAidType map[string]int
}
