// Package postgres provides the GORM-backed Unit of Work and schema migration.
//
// A GormUnitOfWork wraps one database transaction. Repositories handed out after
// Begin share that transaction, so a command that locks a persona, inserts a
// delivery and appends an audit entry commits or rolls back as a whole:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.PersonaRepository().GetForUpdate(ctx, personaID)
//	...
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance belongs to a single goroutine. Create one per command.
package postgres

import (
	"context"

	"aidtracker/internal/adapters/out/postgres/auditrepo"
	"aidtracker/internal/adapters/out/postgres/deliveryrepo"
	"aidtracker/internal/adapters/out/postgres/personarepo"
	"aidtracker/internal/adapters/out/postgres/teamrepo"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands out a fresh GormUnitOfWork per command.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and records which aggregates it touched.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active,
// which is the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) PersonaRepository() ports.PersonaRepository {
	return personarepo.NewGormPersonaRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TeamRepository() ports.TeamRepository {
	return teamrepo.NewGormTeamRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AuditLog() ports.AuditLog {
	return auditrepo.NewGormAuditLog(uow.conn())
}

// TrackAggregate is called by repositories on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount is the number of writes recorded since Begin.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

// conn is the active transaction, or the plain connection before Begin.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
