package cmd

import (
	"log/slog"
	"time"

	httpadapter "aidtracker/internal/adapters/in/http"
	"aidtracker/internal/adapters/out/metrics"
	"aidtracker/internal/adapters/out/postgres"
	"aidtracker/internal/adapters/out/postgres/deliveryrepo"
	"aidtracker/internal/adapters/out/postgres/personarepo"
	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/application/usecases/queries"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	location   *time.Location
	clock      kernel.Clock
	rotation   team.Rotation
	engine     services.EligibilityEngine
	metrics    *metrics.PrometheusMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	location *time.Location,
	registry prometheus.Registerer,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		location:   location,
		clock:      kernel.NewSystemClock(location),
		rotation:   team.DefaultRotation(),
		engine:     services.NewEligibilityEngine(),
		metrics:    metrics.NewPrometheusMetrics(registry),
		logger:     logger,
	}
}

func (c *CompositionRoot) personaUoWFactory() commands.PersonaUoWFactory {
	return FuncPersonaUoWFactory(func() commands.PersonaUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) teamUoWFactory() commands.TeamUoWFactory {
	return FuncTeamUoWFactory(func() commands.TeamUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterPersonaCommandHandler() *commands.RegisterPersonaCommandHandler {
	h := commands.NewRegisterPersonaCommandHandler(c.personaUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateMarkPersonaSpecialCommandHandler() *commands.MarkPersonaSpecialCommandHandler {
	h := commands.NewMarkPersonaSpecialCommandHandler(c.personaUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateRemovePersonaSpecialCommandHandler() *commands.RemovePersonaSpecialCommandHandler {
	h := commands.NewRemovePersonaSpecialCommandHandler(c.personaUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateApproveDeliveryCommandHandler() *commands.ApproveDeliveryCommandHandler {
	h := commands.NewApproveDeliveryCommandHandler(c.deliveryUoWFactory(), c.engine, c.rotation, c.clock, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() *commands.AdvanceDeliveryCommandHandler {
	h := commands.NewAdvanceDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateRefreshAgesCommandHandler() *commands.RefreshAgesCommandHandler {
	h := commands.NewRefreshAgesCommandHandler(c.personaUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateExpireDeliveriesCommandHandler() *commands.ExpireDeliveriesCommandHandler {
	h := commands.NewExpireDeliveriesCommandHandler(c.deliveryUoWFactory(), c.clock, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateSeedTeamsCommandHandler() *commands.SeedTeamsCommandHandler {
	h := commands.NewSeedTeamsCommandHandler(c.teamUoWFactory(), c.clock)
	return &h
}

// CreateCheckEligibilityQueryHandler reads outside any transaction, so the
// repositories get no aggregate tracker.
func (c *CompositionRoot) CreateCheckEligibilityQueryHandler() queries.CheckEligibilityQueryHandler {
	return queries.NewCheckEligibilityQueryHandler(
		personarepo.NewGormPersonaRepository(c.gormDB, nil),
		deliveryrepo.NewGormDeliveryRepository(c.gormDB, nil),
		c.engine,
		c.clock,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateGetPersonaQueryHandler() queries.GetPersonaQueryHandler {
	return queries.NewGetPersonaQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPersonaDeliveriesQueryHandler() queries.ListPersonaDeliveriesQueryHandler {
	return queries.NewListPersonaDeliveriesQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetTeamOnDutyQueryHandler() queries.GetTeamOnDutyQueryHandler {
	return queries.NewGetTeamOnDutyQueryHandler(c.rotation, c.clock)
}

func (c *CompositionRoot) CreateGetTeamScheduleQueryHandler() queries.GetTeamScheduleQueryHandler {
	return queries.NewGetTeamScheduleQueryHandler(c.rotation, c.clock)
}

func (c *CompositionRoot) CreateGetTeamDeliveryStatsQueryHandler() queries.GetTeamDeliveryStatsQueryHandler {
	return queries.NewGetTeamDeliveryStatsQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterPersona:       c.CreateRegisterPersonaCommandHandler(),
		MarkPersonaSpecial:    c.CreateMarkPersonaSpecialCommandHandler(),
		RemovePersonaSpecial:  c.CreateRemovePersonaSpecialCommandHandler(),
		ApproveDelivery:       c.CreateApproveDeliveryCommandHandler(),
		AdvanceDelivery:       c.CreateAdvanceDeliveryCommandHandler(),
		GetPersona:            c.CreateGetPersonaQueryHandler(),
		CheckEligibility:      c.CreateCheckEligibilityQueryHandler(),
		ListPersonaDeliveries: c.CreateListPersonaDeliveriesQueryHandler(),
		GetTeamOnDuty:         c.CreateGetTeamOnDutyQueryHandler(),
		GetTeamSchedule:       c.CreateGetTeamScheduleQueryHandler(),
		GetTeamDeliveryStats:  c.CreateGetTeamDeliveryStatsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	ageRefreshJob := jobs.NewAgeRefreshJob(
		c.CreateRefreshAgesCommandHandler(),
		c.config.AgeRefreshSchedule,
		c.location,
		c.metrics,
		c.logger,
	)
	expirySweepJob := jobs.NewExpirySweepJob(
		c.CreateExpireDeliveriesCommandHandler(),
		c.config.ExpirySweepSchedule,
		c.location,
		c.metrics,
		c.logger,
	)
	return jobs.NewJobManager(ageRefreshJob, expirySweepJob)
}

type FuncPersonaUoWFactory func() commands.PersonaUoW

func (f FuncPersonaUoWFactory) Create() commands.PersonaUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncTeamUoWFactory func() commands.TeamUoW

func (f FuncTeamUoWFactory) Create() commands.TeamUoW {
	return f()
}
