// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. EarningsResetJob - Runs at midnight to roll every agent's daily
// earnings counter over to zero. Total earnings are never touched.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(resetEarningsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed rollover run is logged and retried on the next scheduled tick;
// the whole reset happens in one transaction, so a failure never leaves part
// of the fleet on yesterday's counter.
package jobs
