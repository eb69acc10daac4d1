package ports

import (
	"context"

	"aidtracker/internal/core/domain/model/audit"
)

// AuditLog is the append-only sink for change records. Writes join the
// caller's transaction, so an audited change and its entry commit together.
type AuditLog interface {
	Record(ctx context.Context, entry *audit.Entry) error
}
