package commands_test

import (
	"errors"
	"testing"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterPersonaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := kernel.NewUUID()
	cmd, err := commands.NewRegisterPersonaCommand(kernel.NewUUID(), testProfile("0801198000123"), &actor)
	require.NoError(t, err)

	repo := new(MockPersonaRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	var stored *persona.Persona
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PersonaRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*persona.Persona")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*persona.Persona) }).
			Return(nil).Once(),
		uow.On("AuditLog").Return(auditLog).Once(),
		auditLog.On("Record", ctx, auditAction(audit.ActionCreate)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPersonaUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterPersonaCommandHandler(factory, testClock())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cmd.PersonaID(), stored.ID())
	assert.Equal(t, 45, stored.Age())
	repo.AssertExpectations(t)
	auditLog.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterPersonaCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterPersonaCommand{}

	factory := new(MockPersonaUoWFactory)
	handler := commands.NewRegisterPersonaCommandHandler(factory, testClock())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegisterPersonaCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterPersonaCommandHandler_Handle_InvalidProfile(t *testing.T) {
	ctx := t.Context()
	profile := testProfile("")
	cmd, err := commands.NewRegisterPersonaCommand(kernel.NewUUID(), profile, nil)
	require.NoError(t, err)

	factory := new(MockPersonaUoWFactory)
	handler := commands.NewRegisterPersonaCommandHandler(factory, testClock())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterPersonaCommandHandler_Handle_DuplicateNationalID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterPersonaCommand(kernel.NewUUID(), testProfile("0801198000123"), nil)
	require.NoError(t, err)

	repo := new(MockPersonaRepository)
	uow := new(MockUoW)
	duplicate := errs.NewObjectAlreadyExistsError("national id", "0801198000123")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PersonaRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*persona.Persona")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPersonaUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterPersonaCommandHandler(factory, testClock())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestRegisterPersonaCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterPersonaCommand(kernel.NewUUID(), testProfile("0801198000123"), nil)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockPersonaUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewRegisterPersonaCommandHandler(factory, testClock())
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
