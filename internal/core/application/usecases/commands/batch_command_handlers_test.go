package commands_test

import (
	"errors"
	"testing"
	"time"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefreshAgesCommandHandler_Handle(t *testing.T) {
	t.Run("should update only personas whose age changed", func(t *testing.T) {
		ctx := t.Context()
		current := testPersona(t)
		stale, err := persona.RestorePersona(kernel.NewUUID(), testProfile("0801198000999"), 44, persona.RegularCase())
		require.NoError(t, err)

		repo := new(MockPersonaRepository)
		auditLog := new(MockAuditLog)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PersonaRepository").Return(repo).Once(),
			repo.On("GetAll", ctx).Return([]*persona.Persona{current, stale}, nil).Once(),
			repo.On("Update", ctx, mock.MatchedBy(func(p *persona.Persona) bool {
				return p.ID() == stale.ID() && p.Age() == 45
			})).Return(nil).Once(),
			uow.On("AuditLog").Return(auditLog).Once(),
			auditLog.On("Record", ctx, auditAction(audit.ActionRefreshAge)).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockPersonaUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewRefreshAgesCommandHandler(factory, testClock())
		updated, err := handler.Handle(ctx, commands.NewRefreshAgesCommand())

		require.NoError(t, err)
		assert.Equal(t, 1, updated)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should return the storage error and skip commit", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockPersonaRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PersonaRepository").Return(repo).Once(),
			repo.On("GetAll", ctx).Return(nil, errors.New("db down")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockPersonaUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewRefreshAgesCommandHandler(factory, testClock())
		_, err := handler.Handle(ctx, commands.NewRefreshAgesCommand())

		require.EqualError(t, err, "db down")
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestExpireDeliveriesCommandHandler_Handle(t *testing.T) {
	t.Run("should store expired on every overdue record", func(t *testing.T) {
		ctx := t.Context()
		d := approvedDelivery(t, testNow.Add(-10*24*time.Hour))
		require.NoError(t, d.Transition(delivery.Preparing, nil, testNow.Add(-9*24*time.Hour)))

		repo := new(MockDeliveryRepository)
		auditLog := new(MockAuditLog)
		metrics := new(MockMetrics)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DeliveryRepository").Return(repo).Once(),
			repo.On("GetExpirable", ctx, testNow).Return([]*delivery.Delivery{d}, nil).Once(),
			repo.On("Update", ctx, d).Return(nil).Once(),
			uow.On("AuditLog").Return(auditLog).Once(),
			auditLog.On("Record", ctx, auditAction(audit.ActionExpire)).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			metrics.On("DeliveryTransitioned", "vencida").Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewExpireDeliveriesCommandHandler(factory, testClock(), metrics)
		expired, err := handler.Handle(ctx, commands.NewExpireDeliveriesCommand())

		require.NoError(t, err)
		assert.Equal(t, 1, expired)
		assert.Equal(t, delivery.Expired, d.Status())
		metrics.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should commit an empty sweep", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDeliveryRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("DeliveryRepository").Return(repo).Once(),
			repo.On("GetExpirable", ctx, testNow).Return([]*delivery.Delivery{}, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDeliveryUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewExpireDeliveriesCommandHandler(factory, testClock(), new(MockMetrics))
		expired, err := handler.Handle(ctx, commands.NewExpireDeliveriesCommand())

		require.NoError(t, err)
		assert.Zero(t, expired)
		uow.AssertExpectations(t)
	})
}

func TestSeedTeamsCommandHandler_Handle(t *testing.T) {
	t.Run("should create only the missing teams", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockTeamRepository)
		auditLog := new(MockAuditLog)
		uow := new(MockUoW)

		existing, err := team.NewTeam(kernel.NewUUID(), team.AJ)
		require.NoError(t, err)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TeamRepository").Return(repo).Once()
		uow.On("AuditLog").Return(auditLog)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		for _, code := range team.AllCodes() {
			if code == team.AJ {
				repo.On("Get", ctx, code).Return(existing, nil).Once()
				continue
			}
			repo.On("Get", ctx, code).Return(nil, errs.NewObjectNotFoundError("team", code)).Once()
		}
		repo.On("Add", ctx, mock.MatchedBy(func(tm *team.Team) bool {
			return tm.Code() != team.AJ && tm.CycleStart().Equal(team.Epoch) && tm.IsActive()
		})).Return(nil).Times(5)
		auditLog.On("Record", ctx, auditAction(audit.ActionSeed)).Return(nil).Times(5)

		factory := new(MockTeamUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewSeedTeamsCommandHandler(factory, testClock())
		created, err := handler.Handle(ctx, commands.NewSeedTeamsCommand())

		require.NoError(t, err)
		assert.Equal(t, 5, created)
		repo.AssertExpectations(t)
		auditLog.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should stop on an unexpected lookup error", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockTeamRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("TeamRepository").Return(repo).Once(),
			repo.On("Get", ctx, team.AJ).Return(nil, errors.New("timeout")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockTeamUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewSeedTeamsCommandHandler(factory, testClock())
		_, err := handler.Handle(ctx, commands.NewSeedTeamsCommand())

		require.EqualError(t, err, "timeout")
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}
