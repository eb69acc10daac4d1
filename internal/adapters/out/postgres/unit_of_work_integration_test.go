package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "aidtracker/internal/adapters/out/postgres"
	"aidtracker/internal/adapters/out/postgres/auditrepo"
	"aidtracker/internal/adapters/out/postgres/pgtest"
	"aidtracker/internal/adapters/out/postgres/personarepo"
	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

var now = time.Date(2025, time.September, 15, 12, 0, 0, 0, time.UTC)

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Stop(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newPersona() *persona.Persona {
	p, err := persona.NewPersona(kernel.NewUUID(), persona.Profile{
		NationalID:    "0801-2000-" + kernel.NewUUID().String()[:5],
		FirstName:     "Lucía",
		LastName:      "Reyes",
		BirthDate:     kernel.MustNewDate(2000, time.June, 1),
		MaritalStatus: persona.Single,
		FamilyType:    persona.MediumFamily,
	}, kernel.DateOf(now))
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) count(model any) int64 {
	var n int64
	suite.Require().NoError(suite.pg.DB.Model(model).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	p := suite.newPersona()
	suite.Require().NoError(uow.PersonaRepository().Add(ctx, p))

	d, err := delivery.NewDelivery(kernel.NewUUID(), p.ID(), "F-1", delivery.Food, team.AJ, nil, now, "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))

	entry, err := audit.NewEntry(audit.Change{
		Action:   audit.ActionApprove,
		Table:    audit.TableDeliveries,
		RecordID: d.ID(),
		After:    d.Snapshot(),
	}, audit.Origin{}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AuditLog().Record(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count(&personarepo.PersonaDTO{}))
	suite.Equal(int64(1), suite.count(&auditrepo.AuditDTO{}))

	stored, err := suite.factory.Create().DeliveryRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(stored.PersonaID().IsEqual(p.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.PersonaRepository().Add(ctx, suite.newPersona()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.count(&personarepo.PersonaDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_ReturnsInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBeginTwice_KeepsOneTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.PersonaRepository().Add(ctx, suite.newPersona()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.count(&personarepo.PersonaDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTrackAggregate_CountsWrites() {
	ctx := context.Background()
	uow, ok := suite.factory.Create().(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.PersonaRepository().Add(ctx, suite.newPersona()))
	suite.Require().NoError(uow.PersonaRepository().Add(ctx, suite.newPersona()))
	suite.Equal(2, uow.TrackedCount())

	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
