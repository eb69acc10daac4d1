package jobs

import (
	"context"
	"log/slog"
	"time"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const expirySweepJobName = "expiry_sweep"

type deliveryExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireDeliveriesCommand) (int, error)
}

// ExpirySweepJob stores the expired status on overdue deliveries.
type ExpirySweepJob struct {
	handler  deliveryExpirer
	schedule string
	cron     *cron.Cron
	metrics  ports.Metrics
	logger   *slog.Logger
}

func NewExpirySweepJob(
	handler deliveryExpirer,
	schedule string,
	loc *time.Location,
	metrics ports.Metrics,
	logger *slog.Logger,
) *ExpirySweepJob {
	return &ExpirySweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithLocation(loc)),
		metrics:  metrics,
		logger:   logger.With("component", "expiry_sweep_job"),
	}
}

func (j *ExpirySweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry sweep job started", "schedule", j.schedule)
	return nil
}

func (j *ExpirySweepJob) RunOnce(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpireDeliveriesCommand())
	j.metrics.JobFinished(expirySweepJobName, expired, err)

	if err != nil {
		j.logger.ErrorContext(ctx, "Expiry sweep job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Deliveries expired", "count", expired)
	}
}

func (j *ExpirySweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expiry sweep job stopped")
}
