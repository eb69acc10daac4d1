package ports

import (
	"context"

	"aidtracker/internal/core/domain/model/team"
)

// TeamRepository persists the six service teams.
type TeamRepository interface {
	Add(ctx context.Context, t *team.Team) error

	// Get returns the team with code, or errs.ErrObjectNotFound.
	Get(ctx context.Context, code team.Code) (*team.Team, error)

	GetAll(ctx context.Context) ([]*team.Team, error)
}
