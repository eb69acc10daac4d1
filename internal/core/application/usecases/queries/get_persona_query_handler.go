package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPersonaQueryHandler struct {
	db *gorm.DB
}

func NewGetPersonaQueryHandler(db *gorm.DB) GetPersonaQueryHandler {
	return GetPersonaQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when no persona has the given id.
func (h GetPersonaQueryHandler) Handle(ctx context.Context, query GetPersonaQuery) (GetPersonaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPersonaQueryResponse{}, err
	}

	var (
		res       GetPersonaQueryResponse
		id        uuid.UUID
		birthDate time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			numero_identidad,
			es_extranjero,
			nombre,
			apellido,
			fecha_nacimiento,
			edad,
			estado_civil,
			tipo_familia,
			COALESCE(telefono, ''),
			COALESCE(direccion, ''),
			COALESCE(equipo_servicio, ''),
			miembros_sirven_iglesia,
			dependientes,
			es_especial,
			entregas_mes_permitidas,
			especial_indefinido,
			COALESCE(especial_observaciones, '')
		FROM personas
		WHERE id = ?
	`, query.PersonaID().Bytes()).Row()

	err := row.Scan(
		&id,
		&res.NationalID,
		&res.Foreign,
		&res.FirstName,
		&res.LastName,
		&birthDate,
		&res.Age,
		&res.MaritalStatus,
		&res.FamilyType,
		&res.Phone,
		&res.Address,
		&res.ServiceTeam,
		&res.MembersServing,
		&res.Dependents,
		&res.Special,
		&res.MonthlyCap,
		&res.SpecialIndefinite,
		&res.SpecialObservations,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPersonaQueryResponse{}, errs.NewObjectNotFoundError("persona", query.PersonaID().String())
		}
		return GetPersonaQueryResponse{}, err
	}

	personaID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPersonaQueryResponse{}, err
	}
	res.ID = personaID
	res.BirthDate = kernel.DateOf(birthDate.UTC())

	return res, nil
}
