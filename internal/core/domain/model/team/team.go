package team

import (
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
)

var ErrTeamIsNotConstructed = errors.New("Team must be created via NewTeam or RestoreTeam")

// Team is the stored record of one service team. Its duty weeks come from
// Rotation, not from per-team state.
type Team struct {
	id         kernel.UUID
	code       Code
	cycleStart kernel.Date
	active     bool

	isConstructed bool
}

// NewTeam registers an active team whose cycle starts at the rotation epoch.
func NewTeam(id kernel.UUID, code Code) (*Team, error) {
	return RestoreTeam(id, code, Epoch, true)
}

// RestoreTeam rebuilds a team from storage.
func RestoreTeam(id kernel.UUID, code Code, cycleStart kernel.Date, active bool) (*Team, error) {
	if err := errors.Join(id.Validate(), code.Validate(), cycleStart.Validate()); err != nil {
		return nil, err
	}

	return &Team{
		id:            id,
		code:          code,
		cycleStart:    cycleStart,
		active:        active,
		isConstructed: true,
	}, nil
}

func (t *Team) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTeamIsNotConstructed
	}
	return nil
}

func (t *Team) ID() kernel.UUID {
	return t.id
}

func (t *Team) Code() Code {
	return t.code
}

func (t *Team) CycleStart() kernel.Date {
	return t.cycleStart
}

func (t *Team) IsActive() bool {
	return t.active
}

func (t *Team) DisplayName() string {
	return t.code.DisplayName()
}
