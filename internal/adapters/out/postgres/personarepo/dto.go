// Package personarepo maps beneficiaries to the personas table.
package personarepo

import (
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"

	"github.com/google/uuid"
)

// PersonaDTO is one row of the personas table. Column names keep the
// program's original Spanish schema.
type PersonaDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	NationalID          string    `gorm:"column:numero_identidad;type:varchar(20);not null;uniqueIndex"`
	Foreign             bool      `gorm:"column:es_extranjero;not null;default:false"`
	FirstName           string    `gorm:"column:nombre;type:varchar(100);not null"`
	LastName            string    `gorm:"column:apellido;type:varchar(100);not null"`
	BirthDate           time.Time `gorm:"column:fecha_nacimiento;type:date;not null"`
	Age                 int       `gorm:"column:edad;not null"`
	MaritalStatus       string    `gorm:"column:estado_civil;type:varchar(20);not null"`
	Phone               string    `gorm:"column:telefono;type:varchar(15)"`
	Address             string    `gorm:"column:direccion;type:text"`
	ServiceTeam         string    `gorm:"column:equipo_servicio;type:varchar(50)"`
	FamilyType          string    `gorm:"column:tipo_familia;type:varchar(20);not null;index"`
	MembersServing      int       `gorm:"column:miembros_sirven_iglesia;not null;default:0"`
	Dependents          int       `gorm:"column:dependientes;not null;default:0"`
	Special             bool      `gorm:"column:es_especial;not null;default:false;index"`
	MonthlyCap          int       `gorm:"column:entregas_mes_permitidas;not null;default:1"`
	SpecialIndefinite   bool      `gorm:"column:especial_indefinido;not null;default:false"`
	SpecialObservations string    `gorm:"column:especial_observaciones;type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (PersonaDTO) TableName() string {
	return "personas"
}

func fromDomain(p *persona.Persona) PersonaDTO {
	profile := p.Profile()
	special := p.SpecialCase()

	return PersonaDTO{
		ID:                  p.ID().Bytes(),
		NationalID:          profile.NationalID,
		Foreign:             profile.Foreign,
		FirstName:           profile.FirstName,
		LastName:            profile.LastName,
		BirthDate:           profile.BirthDate.In(time.UTC),
		Age:                 p.Age(),
		MaritalStatus:       profile.MaritalStatus.Value(),
		Phone:               profile.Phone,
		Address:             profile.Address,
		ServiceTeam:         profile.ServiceTeam,
		FamilyType:          profile.FamilyType.Value(),
		MembersServing:      profile.MembersServing,
		Dependents:          profile.Dependents,
		Special:             special.IsSpecial(),
		MonthlyCap:          special.MonthlyCap(),
		SpecialIndefinite:   special.IsIndefinite(),
		SpecialObservations: special.Notes(),
	}
}

func toDomain(dto PersonaDTO) (*persona.Persona, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	maritalStatus, err := persona.ParseMaritalStatus(dto.MaritalStatus)
	if err != nil {
		return nil, err
	}

	familyType, err := persona.ParseFamilyType(dto.FamilyType)
	if err != nil {
		return nil, err
	}

	profile := persona.Profile{
		NationalID:     dto.NationalID,
		Foreign:        dto.Foreign,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		BirthDate:      kernel.DateOf(dto.BirthDate),
		MaritalStatus:  maritalStatus,
		FamilyType:     familyType,
		Phone:          dto.Phone,
		Address:        dto.Address,
		ServiceTeam:    dto.ServiceTeam,
		MembersServing: dto.MembersServing,
		Dependents:     dto.Dependents,
	}
	special := persona.RestoreSpecialCase(dto.Special, dto.MonthlyCap, dto.SpecialIndefinite, dto.SpecialObservations)

	return persona.RestorePersona(id, profile, dto.Age, special)
}
