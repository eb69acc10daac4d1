package commands_test

import (
	"testing"
	"time"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func approvedDelivery(t *testing.T, approvedAt time.Time) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), "F-0100", delivery.Food, team.AJ, nil, approvedAt, "",
	)
	require.NoError(t, err)
	return d
}

func TestAdvanceDeliveryCommandHandler_Handle_Prepare(t *testing.T) {
	ctx := t.Context()
	d := approvedDelivery(t, testNow.Add(-time.Hour))
	actor := kernel.NewUUID()
	cmd, err := commands.NewAdvanceDeliveryCommand(d.ID(), delivery.Preparing, &actor)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	auditLog := new(MockAuditLog)
	metrics := new(MockMetrics)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		repo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("AuditLog").Return(auditLog).Once(),
		auditLog.On("Record", ctx, auditAction(audit.ActionTransition)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		metrics.On("DeliveryTransitioned", "en_preparacion").Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory, testClock(), metrics)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Preparing, d.Status())
	require.NotNil(t, d.ExpiresAt())
	assert.True(t, testNow.Add(delivery.ExpiryPeriod).Equal(*d.ExpiresAt()))
	assert.Equal(t, &actor, d.PreparedBy())

	repo.AssertExpectations(t)
	auditLog.AssertExpectations(t)
	metrics.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceDeliveryCommandHandler_Handle_OutOfOrder(t *testing.T) {
	ctx := t.Context()
	d := approvedDelivery(t, testNow.Add(-time.Hour))
	cmd, err := commands.NewAdvanceDeliveryCommand(d.ID(), delivery.Delivered, nil)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	metrics := new(MockMetrics)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory, testClock(), metrics)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, delivery.Approved, d.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	metrics.AssertNotCalled(t, "DeliveryTransitioned", mock.Anything)
}

func TestAdvanceDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAdvanceDeliveryCommand(id, delivery.Ready, nil)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("delivery", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryCommandHandler(factory, testClock(), new(MockMetrics))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewAdvanceDeliveryCommand(t *testing.T) {
	t.Run("should accept every step after approval", func(t *testing.T) {
		for _, target := range []delivery.Status{delivery.Preparing, delivery.Ready, delivery.Delivered, delivery.Expired} {
			cmd, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), target, nil)
			require.NoError(t, err)
			assert.Equal(t, target, cmd.Target())
		}
	})

	t.Run("should reject approved as a target", func(t *testing.T) {
		_, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), delivery.Approved, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), delivery.UnknownStatus, nil)
		require.Error(t, err)
	})
}
