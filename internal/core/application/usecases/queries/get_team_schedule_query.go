package queries

import (
	"errors"

	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/errs"
	"aidtracker/internal/pkg/guard"
)

const (
	DefaultScheduleWindows = 4
	MaxScheduleWindows     = 52
)

var ErrGetTeamScheduleQueryIsNotConstructed = errors.New(
	"GetTeamScheduleQuery must be created via NewGetTeamScheduleQuery constructor",
)

// GetTeamScheduleQuery lists the next duty weeks of a team. A zero count
// means DefaultScheduleWindows.
type GetTeamScheduleQuery struct { //nolint:recvcheck //using for validation
	team  team.Code
	count int

	guard guard.ConstructorGuard
}

func NewGetTeamScheduleQuery(code team.Code, count int) (GetTeamScheduleQuery, error) {
	if count == 0 {
		count = DefaultScheduleWindows
	}

	query := GetTeamScheduleQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		query.setTeam(code),
		query.setCount(count),
	); err != nil {
		return GetTeamScheduleQuery{}, err
	}
	return query, nil
}

func (q GetTeamScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetTeamScheduleQueryIsNotConstructed)
}

func (q GetTeamScheduleQuery) Team() team.Code {
	return q.team
}

func (q GetTeamScheduleQuery) Count() int {
	return q.count
}

func (q *GetTeamScheduleQuery) setTeam(code team.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	q.team = code
	return nil
}

func (q *GetTeamScheduleQuery) setCount(count int) error {
	if count < 1 || count > MaxScheduleWindows {
		return errs.NewValueIsOutOfRangeError("count", count, 1, MaxScheduleWindows)
	}
	q.count = count
	return nil
}

type GetTeamScheduleQueryResponse struct {
	Team        team.Code
	DisplayName string
	OnDutyToday bool
	Windows     []team.Window
}
