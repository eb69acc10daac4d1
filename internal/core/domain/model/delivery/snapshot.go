package delivery

import (
	"time"

	"aidtracker/internal/core/domain/model/kernel"
)

// Snapshot is the audit-log rendering of a delivery.
type Snapshot struct {
	ID          string       `json:"id"`
	PersonaID   string       `json:"persona_id"`
	Folio       string       `json:"folio_boleta"`
	AidType     string       `json:"tipo_ayuda"`
	Status      string       `json:"estado"`
	Team        string       `json:"equipo_responsable"`
	ApprovedAt  time.Time    `json:"fecha_aprobacion"`
	PreparedAt  *time.Time   `json:"fecha_preparacion,omitempty"`
	ReadyAt     *time.Time   `json:"fecha_lista,omitempty"`
	DeliveredAt *time.Time   `json:"fecha_entrega,omitempty"`
	ExpiresAt   *time.Time   `json:"fecha_vencimiento,omitempty"`
	ApprovedBy  *kernel.UUID `json:"usuario_aprobo,omitempty"`
	PreparedBy  *kernel.UUID `json:"usuario_preparo,omitempty"`
	DeliveredBy *kernel.UUID `json:"usuario_entrego,omitempty"`
	Notes       string       `json:"observaciones,omitempty"`
}

func (d *Delivery) Snapshot() Snapshot {
	return Snapshot{
		ID:          d.id.String(),
		PersonaID:   d.personaID.String(),
		Folio:       d.folio,
		AidType:     d.aidType.Value(),
		Status:      d.status.Value(),
		Team:        d.team.String(),
		ApprovedAt:  d.approvedAt,
		PreparedAt:  d.preparedAt,
		ReadyAt:     d.readyAt,
		DeliveredAt: d.deliveredAt,
		ExpiresAt:   d.expiresAt,
		ApprovedBy:  d.approvedBy,
		PreparedBy:  d.preparedBy,
		DeliveredBy: d.deliveredBy,
		Notes:       d.notes,
	}
}
