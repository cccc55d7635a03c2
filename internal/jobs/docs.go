// Package jobs provides scheduled background tasks for the marketplace
// operations core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. SLAMonitorJob - Periodically counts complaints past their SLA deadline,
// logs the count, and publishes it as a prometheus gauge.
//
// The overdue condition remains computed at read time; the job is reporting
// only and never writes an overdue flag back to storage.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
