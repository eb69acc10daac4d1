package jobs

import (
	"context"
	"log/slog"
	"time"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const ageRefreshJobName = "age_refresh"

type ageRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshAgesCommand) (int, error)
}

// AgeRefreshJob recomputes stored ages once a day so birthdays show up
// without anyone editing the persona.
type AgeRefreshJob struct {
	handler  ageRefresher
	schedule string
	cron     *cron.Cron
	metrics  ports.Metrics
	logger   *slog.Logger
}

func NewAgeRefreshJob(
	handler ageRefresher,
	schedule string,
	loc *time.Location,
	metrics ports.Metrics,
	logger *slog.Logger,
) *AgeRefreshJob {
	return &AgeRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithLocation(loc)),
		metrics:  metrics,
		logger:   logger.With("component", "age_refresh_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *AgeRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Age refresh job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs one refresh outside the schedule.
func (j *AgeRefreshJob) RunOnce(ctx context.Context) {
	updated, err := j.handler.Handle(ctx, commands.NewRefreshAgesCommand())
	j.metrics.JobFinished(ageRefreshJobName, updated, err)

	if err != nil {
		j.logger.ErrorContext(ctx, "Age refresh job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Ages refreshed", "updated", updated)
}

// Stop waits for a running refresh to finish.
func (j *AgeRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Age refresh job stopped")
}
