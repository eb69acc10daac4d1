// Package jobs runs the scheduled maintenance tasks with github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. AgeRefreshJob - daily, recomputes persona ages from birth dates
//  2. ExpirySweepJob - hourly, stores the expired status on deliveries whose
//     pickup window closed
//
// Schedules are standard five-field cron expressions evaluated in the
// configured time zone.
//
// # Usage
//
//	manager := jobs.NewJobManager(
//		jobs.NewAgeRefreshJob(refreshHandler, "0 1 * * *", loc, metrics, logger),
//		jobs.NewExpirySweepJob(expireHandler, "0 * * * *", loc, metrics, logger),
//	)
//	if err := manager.StartAll(ctx); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Failures are logged and counted; the next scheduled run retries.
package jobs
