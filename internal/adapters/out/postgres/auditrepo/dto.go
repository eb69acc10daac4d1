// Package auditrepo appends audit entries to the auditorias table.
package auditrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AuditDTO is one row of auditorias. Snapshots are stored as jsonb.
type AuditDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"column:usuario_id;type:uuid;index"`
	Action    string     `gorm:"column:accion;type:varchar(100);not null;index:idx_accion_fecha,priority:1"`
	Table     string     `gorm:"column:tabla_afectada;type:varchar(50);index:idx_tabla_registro,priority:1"`
	RecordID  uuid.UUID  `gorm:"column:registro_id;type:uuid;index:idx_tabla_registro,priority:2"`
	Before    *string    `gorm:"column:datos_anteriores;type:jsonb"`
	After     *string    `gorm:"column:datos_nuevos;type:jsonb"`
	IPAddress string     `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent string     `gorm:"column:user_agent;type:text"`
	Reason    string     `gorm:"column:razon_cambio;type:text"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;index;index:idx_accion_fecha,priority:2"`
}

func (AuditDTO) TableName() string {
	return "auditorias"
}

func fromDomain(e *audit.Entry) (AuditDTO, error) {
	before, err := marshalSnapshot(e.Before())
	if err != nil {
		return AuditDTO{}, fmt.Errorf("encode previous state: %w", err)
	}

	after, err := marshalSnapshot(e.After())
	if err != nil {
		return AuditDTO{}, fmt.Errorf("encode new state: %w", err)
	}

	return AuditDTO{
		ID:        e.ID().Bytes(),
		UserID:    kernel.BytesPtr(e.Actor()),
		Action:    string(e.Action()),
		Table:     e.Table(),
		RecordID:  e.RecordID().Bytes(),
		Before:    before,
		After:     after,
		IPAddress: e.Origin().IPAddress,
		UserAgent: e.Origin().UserAgent,
		Reason:    e.Reason(),
		CreatedAt: e.At(),
	}, nil
}

func marshalSnapshot(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}
