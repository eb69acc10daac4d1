package jobs

import (
	"context"
	"fmt"
)

// JobManager starts and stops the scheduled jobs together.
type JobManager struct {
	ageRefreshJob  *AgeRefreshJob
	expirySweepJob *ExpirySweepJob
}

func NewJobManager(ageRefreshJob *AgeRefreshJob, expirySweepJob *ExpirySweepJob) *JobManager {
	return &JobManager{
		ageRefreshJob:  ageRefreshJob,
		expirySweepJob: expirySweepJob,
	}
}

// StartAll runs one catch-up pass of each job, then schedules them.
// Returns an error if any schedule is invalid.
func (jm *JobManager) StartAll(ctx context.Context) error {
	jm.ageRefreshJob.RunOnce(ctx)
	jm.expirySweepJob.RunOnce(ctx)

	if err := jm.ageRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start age refresh job: %w", err)
	}

	if err := jm.expirySweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.ageRefreshJob.Stop()
		return fmt.Errorf("failed to start expiry sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expirySweepJob.Stop()
	jm.ageRefreshJob.Stop()
}
