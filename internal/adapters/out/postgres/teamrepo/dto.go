// Package teamrepo maps the service teams to the equipos table.
package teamrepo

import (
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"

	"github.com/google/uuid"
)

type TeamDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"column:codigo;type:varchar(2);not null;uniqueIndex"`
	Name       string    `gorm:"column:nombre;type:varchar(50);not null"`
	Active     bool      `gorm:"column:activo;not null"`
	CycleStart time.Time `gorm:"column:fecha_inicio_ciclo;type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TeamDTO) TableName() string {
	return "equipos"
}

func fromDomain(t *team.Team) TeamDTO {
	return TeamDTO{
		ID:         t.ID().Bytes(),
		Code:       t.Code().String(),
		Name:       t.DisplayName(),
		Active:     t.IsActive(),
		CycleStart: t.CycleStart().In(time.UTC),
	}
}

func toDomain(dto TeamDTO) (*team.Team, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := team.ParseCode(dto.Code)
	if err != nil {
		return nil, err
	}

	return team.RestoreTeam(id, code, kernel.DateOf(dto.CycleStart), dto.Active)
}
