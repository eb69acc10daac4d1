package queries

import (
	"context"
	"time"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPersonaDeliveriesQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewListPersonaDeliveriesQueryHandler(db *gorm.DB, clock kernel.Clock) ListPersonaDeliveriesQueryHandler {
	return ListPersonaDeliveriesQueryHandler{db: db, clock: clock}
}

// Handle returns an empty slice for an unknown persona.
func (h ListPersonaDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListPersonaDeliveriesQuery,
) ([]DeliveryItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	tx := h.db.WithContext(ctx).
		Table("bitacora_entregas").
		Select(`id, folio_boleta, tipo_ayuda, equipo_responsable, estado, fecha_aprobacion,
			fecha_preparacion, fecha_lista, fecha_entrega, fecha_vencimiento, COALESCE(observaciones, '')`).
		Where("persona_id = ?", query.PersonaID().Bytes())
	tx = approvalRange(tx, query.From(), query.To(), now.Location())

	rows, err := tx.Order("fecha_aprobacion DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DeliveryItem, 0)
	for rows.Next() {
		var (
			item DeliveryItem
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&item.Folio,
			&item.AidType,
			&item.Team,
			&item.Status,
			&item.ApprovedAt,
			&item.PreparedAt,
			&item.ReadyAt,
			&item.DeliveredAt,
			&item.ExpiresAt,
			&item.Notes,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = deliveryID
		item.Status = effectiveStatus(item.Status, item.ExpiresAt, now)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// approvalRange narrows tx to approvals between the two days, inclusive,
// with days taken in loc.
func approvalRange(tx *gorm.DB, from, to *kernel.Date, loc *time.Location) *gorm.DB {
	if from != nil {
		tx = tx.Where("fecha_aprobacion >= ?", from.In(loc))
	}
	if to != nil {
		tx = tx.Where("fecha_aprobacion < ?", to.AddDays(1).In(loc))
	}
	return tx
}

func effectiveStatus(stored string, expiresAt *time.Time, now time.Time) string {
	status, err := delivery.ParseStatus(stored)
	if err != nil {
		return stored
	}
	if status.CanExpire() && expiresAt != nil && now.After(*expiresAt) {
		return delivery.Expired.Value()
	}
	return stored
}
