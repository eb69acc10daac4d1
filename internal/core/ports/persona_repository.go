// Package ports defines the contracts between the application core and the
// storage, metrics and audit adapters.
package ports

import (
	"context"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
)

// PersonaRepository persists beneficiaries.
type PersonaRepository interface {
	// Add stores a new persona. A duplicate national ID yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, p *persona.Persona) error

	// Update overwrites the stored persona.
	Update(ctx context.Context, p *persona.Persona) error

	Get(ctx context.Context, id kernel.UUID) (*persona.Persona, error)

	// GetForUpdate reads the persona and locks its row until the transaction ends.
	// Approvals for the same persona serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*persona.Persona, error)

	GetAll(ctx context.Context) ([]*persona.Persona, error)
}
