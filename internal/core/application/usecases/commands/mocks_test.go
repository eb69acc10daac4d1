package commands_test

import (
	"context"
	"testing"
	"time"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/domain/model/audit"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPersonaRepository struct{ mock.Mock }

func (m *MockPersonaRepository) Add(ctx context.Context, p *persona.Persona) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonaRepository) Update(ctx context.Context, p *persona.Persona) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonaRepository) Get(ctx context.Context, id kernel.UUID) (*persona.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persona.Persona), args.Error(1)
}

func (m *MockPersonaRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*persona.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persona.Persona), args.Error(1)
}

func (m *MockPersonaRepository) GetAll(ctx context.Context) ([]*persona.Persona, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*persona.Persona), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) History(ctx context.Context, personaID kernel.UUID, now time.Time) (services.History, error) {
	args := m.Called(ctx, personaID, now)
	return args.Get(0).(services.History), args.Error(1)
}

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetExpirable(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockTeamRepository struct{ mock.Mock }

func (m *MockTeamRepository) Add(ctx context.Context, t *team.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTeamRepository) Get(ctx context.Context, code team.Code) (*team.Team, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *MockTeamRepository) GetAll(ctx context.Context) ([]*team.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*team.Team), args.Error(1)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) EligibilityChecked(code string, eligible bool) {
	m.Called(code, eligible)
}

func (m *MockMetrics) DeliveryTransitioned(status string) {
	m.Called(status)
}

func (m *MockMetrics) JobFinished(job string, processed int, err error) {
	m.Called(job, processed, err)
}

// MockUoW satisfies every unit of work flavor the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PersonaRepository() ports.PersonaRepository {
	args := m.Called()
	return args.Get(0).(ports.PersonaRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) TeamRepository() ports.TeamRepository {
	args := m.Called()
	return args.Get(0).(ports.TeamRepository)
}

func (m *MockUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

type MockPersonaUoWFactory struct{ mock.Mock }

func (m *MockPersonaUoWFactory) Create() commands.PersonaUoW {
	args := m.Called()
	return args.Get(0).(commands.PersonaUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockTeamUoWFactory struct{ mock.Mock }

func (m *MockTeamUoWFactory) Create() commands.TeamUoW {
	args := m.Called()
	return args.Get(0).(commands.TeamUoW)
}

var testNow = time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)

func testClock() kernel.FixedClock {
	return kernel.FixedClock{At: testNow}
}

func testProfile(nationalID string) persona.Profile {
	return persona.Profile{
		NationalID:    nationalID,
		FirstName:     "María",
		LastName:      "López",
		BirthDate:     kernel.MustNewDate(1980, time.March, 2),
		MaritalStatus: persona.Married,
		FamilyType:    persona.MediumFamily,
		Dependents:    3,
	}
}

func testPersona(t *testing.T) *persona.Persona {
	t.Helper()

	p, err := persona.NewPersona(kernel.NewUUID(), testProfile("0801198000123"), kernel.DateOf(testNow))
	require.NoError(t, err)
	return p
}

func auditAction(action audit.Action) any {
	return mock.MatchedBy(func(e *audit.Entry) bool {
		return e.Action() == action
	})
}
