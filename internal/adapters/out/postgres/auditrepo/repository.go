package auditrepo

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditLog implements ports.AuditLog using GORM. Entries are only ever inserted.
type GormAuditLog struct {
	db *gorm.DB
}

func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

func (l *GormAuditLog) Record(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
