package queries

import (
	"context"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
)

type GetTeamScheduleQueryHandler struct {
	rotation team.Rotation
	clock    kernel.Clock
}

func NewGetTeamScheduleQueryHandler(rotation team.Rotation, clock kernel.Clock) GetTeamScheduleQueryHandler {
	return GetTeamScheduleQueryHandler{rotation: rotation, clock: clock}
}

// Handle starts with the current week when the team is on duty today.
func (h GetTeamScheduleQueryHandler) Handle(_ context.Context, query GetTeamScheduleQuery) (GetTeamScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTeamScheduleQueryResponse{}, err
	}

	today := kernel.Today(h.clock)
	return GetTeamScheduleQueryResponse{
		Team:        query.Team(),
		DisplayName: query.Team().DisplayName(),
		OnDutyToday: h.rotation.IsOnDuty(query.Team(), today),
		Windows:     h.rotation.UpcomingWindows(query.Team(), today, query.Count()),
	}, nil
}
