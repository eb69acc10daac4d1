package queries

import (
	"context"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
)

type GetTeamOnDutyQueryHandler struct {
	rotation team.Rotation
	clock    kernel.Clock
}

func NewGetTeamOnDutyQueryHandler(rotation team.Rotation, clock kernel.Clock) GetTeamOnDutyQueryHandler {
	return GetTeamOnDutyQueryHandler{rotation: rotation, clock: clock}
}

func (h GetTeamOnDutyQueryHandler) Handle(_ context.Context, query GetTeamOnDutyQuery) (GetTeamOnDutyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTeamOnDutyQueryResponse{}, err
	}

	day := kernel.Today(h.clock)
	if query.Day() != nil {
		day = *query.Day()
	}

	code := h.rotation.TeamOnDuty(day)
	return GetTeamOnDutyQueryResponse{
		Day:         day,
		Team:        code,
		DisplayName: code.DisplayName(),
		Window:      h.rotation.UpcomingWindows(code, day, 1)[0],
	}, nil
}
