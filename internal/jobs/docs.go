// Package jobs provides scheduled background tasks for the coordination
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// All schedules are evaluated in the Dushanbe time zone.
//
// # Available Jobs
//
// 1. DailyReportJob - Sends the order counters summary to admins at 21:00
// 2. PendingReminderJob - Hourly reminder about unassigned orders, working hours only
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reportHandler, pendingHandler, messenger, adminIDs, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Report and reminder failures are logged, never fatal
// - Per-admin send failures are logged and do not stop the remaining sends
// - Failed job starts will stop any already running jobs
package jobs
