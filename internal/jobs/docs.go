// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the workshop.
//
// # Available Jobs
//
// 1. WorkloadResetJob - Runs every Monday at midnight to clear weekly tailor workload counters
// 2. LowStockReportJob - Runs hourly to report materials at or below their reorder point
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(resetWorkloadHandler, lowStockHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The workload reset job logs failures; the reset runs again the next week
// - The low stock report job logs scan failures and warns per flagged material
// - Failed job starts will stop any already running jobs
package jobs
