// Package deliveryrepo maps the delivery log to the bitacora_entregas table.
package deliveryrepo

import (
	"time"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"

	"github.com/google/uuid"
)

// DeliveryDTO is one row of bitacora_entregas.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PersonaID   uuid.UUID  `gorm:"column:persona_id;type:uuid;not null;index"`
	Folio       string     `gorm:"column:folio_boleta;type:varchar(20);not null"`
	AidType     string     `gorm:"column:tipo_ayuda;type:varchar(20);not null"`
	Status      string     `gorm:"column:estado;type:varchar(20);not null;index;index:idx_estado_vencimiento,priority:1"`
	Team        string     `gorm:"column:equipo_responsable;type:varchar(2);not null;index"`
	ApprovedAt  time.Time  `gorm:"column:fecha_aprobacion;not null;index"`
	PreparedAt  *time.Time `gorm:"column:fecha_preparacion"`
	ReadyAt     *time.Time `gorm:"column:fecha_lista"`
	DeliveredAt *time.Time `gorm:"column:fecha_entrega"`
	ExpiresAt   *time.Time `gorm:"column:fecha_vencimiento;index:idx_estado_vencimiento,priority:2"`
	ApprovedBy  *uuid.UUID `gorm:"column:usuario_aprobo;type:uuid"`
	PreparedBy  *uuid.UUID `gorm:"column:usuario_preparo;type:uuid"`
	DeliveredBy *uuid.UUID `gorm:"column:usuario_entrego;type:uuid"`
	Notes       string     `gorm:"column:observaciones;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DeliveryDTO) TableName() string {
	return "bitacora_entregas"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	s := d.State()

	return DeliveryDTO{
		ID:          s.ID.Bytes(),
		PersonaID:   s.PersonaID.Bytes(),
		Folio:       s.Folio,
		AidType:     s.AidType.Value(),
		Status:      s.Status.Value(),
		Team:        s.Team.String(),
		ApprovedAt:  s.ApprovedAt,
		PreparedAt:  s.PreparedAt,
		ReadyAt:     s.ReadyAt,
		DeliveredAt: s.DeliveredAt,
		ExpiresAt:   s.ExpiresAt,
		ApprovedBy:  kernel.BytesPtr(s.ApprovedBy),
		PreparedBy:  kernel.BytesPtr(s.PreparedBy),
		DeliveredBy: kernel.BytesPtr(s.DeliveredBy),
		Notes:       s.Notes,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	personaID, err := kernel.UUIDFromBytes(dto.PersonaID[:])
	if err != nil {
		return nil, err
	}

	aidType, err := delivery.ParseAidType(dto.AidType)
	if err != nil {
		return nil, err
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	code, err := team.ParseCode(dto.Team)
	if err != nil {
		return nil, err
	}

	approvedBy, err := kernel.OptionalUUID(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}

	preparedBy, err := kernel.OptionalUUID(dto.PreparedBy)
	if err != nil {
		return nil, err
	}

	deliveredBy, err := kernel.OptionalUUID(dto.DeliveredBy)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.State{
		ID:          id,
		PersonaID:   personaID,
		Folio:       dto.Folio,
		AidType:     aidType,
		Team:        code,
		Status:      status,
		ApprovedAt:  dto.ApprovedAt,
		PreparedAt:  dto.PreparedAt,
		ReadyAt:     dto.ReadyAt,
		DeliveredAt: dto.DeliveredAt,
		ExpiresAt:   dto.ExpiresAt,
		ApprovedBy:  approvedBy,
		PreparedBy:  preparedBy,
		DeliveredBy: deliveredBy,
		Notes:       dto.Notes,
	})
}
