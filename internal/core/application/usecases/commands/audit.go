package commands

import (
	"context"
	"time"

	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/ports"
)

// record appends one audit entry stamped with the request origin carried by ctx.
func record(ctx context.Context, log ports.AuditLog, change audit.Change, at time.Time) error {
	entry, err := audit.NewEntry(change, audit.OriginFrom(ctx), at)
	if err != nil {
		return err
	}
	return log.Record(ctx, entry)
}
