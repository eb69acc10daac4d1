package queries

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/guard"
)

var ErrGetTeamOnDutyQueryIsNotConstructed = errors.New(
	"GetTeamOnDutyQuery must be created via NewGetTeamOnDutyQuery constructor",
)

// GetTeamOnDutyQuery asks which team serves on a day. A nil day means today.
type GetTeamOnDutyQuery struct {
	day *kernel.Date

	guard guard.ConstructorGuard
}

func NewGetTeamOnDutyQuery(day *kernel.Date) (GetTeamOnDutyQuery, error) {
	if day != nil {
		if err := day.Validate(); err != nil {
			return GetTeamOnDutyQuery{}, err
		}
	}
	return GetTeamOnDutyQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTeamOnDutyQuery) Validate() error {
	return q.guard.Validate(ErrGetTeamOnDutyQueryIsNotConstructed)
}

func (q GetTeamOnDutyQuery) Day() *kernel.Date {
	return q.day
}

type GetTeamOnDutyQueryResponse struct {
	Day         kernel.Date
	Team        team.Code
	DisplayName string
	Window      team.Window
}
