package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active. Calling it after
	// Commit is harmless, which lets handlers defer it unconditionally.
	Rollback(ctx context.Context) error

	PersonaRepository() PersonaRepository
	DeliveryRepository() DeliveryRepository
	TeamRepository() TeamRepository
	AuditLog() AuditLog
}
