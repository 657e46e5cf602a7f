// Package jobs provides scheduled background tasks for the tracking service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules have
// six fields.
//
// # Available Jobs
//
// StoreCatalogRefreshJob reloads the in-memory store catalog, every 30 seconds
// by default. Stores created through this instance invalidate the catalog
// immediately; the job covers stores created elsewhere.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(storeCatalog, cfg.StoreCatalogRefreshSpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot keeps serving reads.
// An invalid schedule fails StartAll.
package jobs
