// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(platformStatsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is SettlementReportJob, which logs platform settlement
// totals once a minute. It is read-only; order settlement itself happens
// synchronously inside the order completion transaction.
package jobs
