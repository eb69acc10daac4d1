// Package commands contains the operations that change state. Every handler
// validates its command, opens a unit of work, writes an audit entry next to
// the change and commits.
package commands

import (
	"context"

	"aidtracker/internal/core/ports"
)

type (
	// TxManager controls the transaction of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PersonaRepoFactory interface {
		PersonaRepository() ports.PersonaRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	TeamRepoFactory interface {
		TeamRepository() ports.TeamRepository
	}

	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// PersonaUoW serves commands that only touch personas.
	PersonaUoW interface {
		TxManager
		PersonaRepoFactory
		AuditLogFactory
	}

	PersonaUoWFactory interface {
		Create() PersonaUoW
	}

	// DeliveryUoW serves the delivery log commands. Approval reads and locks
	// the persona in the same transaction that inserts the delivery.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.PersonaRepository().GetForUpdate(ctx, personaID)
	//   h, err := uow.DeliveryRepository().History(ctx, personaID, now)
	//   // ... decide, insert, audit
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		PersonaRepoFactory
		DeliveryRepoFactory
		AuditLogFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// TeamUoW serves team seeding.
	TeamUoW interface {
		TxManager
		TeamRepoFactory
		AuditLogFactory
	}

	TeamUoWFactory interface {
		Create() TeamUoW
	}
)
