package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops the scheduled jobs of the service together.
type JobManager struct {
	storeCatalogRefreshJob *StoreCatalogRefreshJob
}

func NewJobManager(catalog CatalogRefresher, catalogRefreshSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		storeCatalogRefreshJob: NewStoreCatalogRefreshJob(catalog, catalogRefreshSpec, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeCatalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start store catalog refresh job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.storeCatalogRefreshJob.Stop()
}
