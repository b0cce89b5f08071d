// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot do.
//
// # Available Jobs
//
// 1. StaleOrderSweepJob - Runs nightly to cancel pending orders whose delivery date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireStaleOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep runs at 00:05 each night, after the delivery day has rolled
// over, and once immediately on startup so a restart never leaves stale
// orders in place.
package jobs
