package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultStoreCatalogRefreshSpec reloads the catalog every 30 seconds.
const DefaultStoreCatalogRefreshSpec = "*/30 * * * * *"

const refreshTimeout = 10 * time.Second

// CatalogRefresher reloads a cached store list.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// StoreCatalogRefreshJob picks up stores created by other instances of the
// service, which cannot invalidate this instance's catalog directly.
type StoreCatalogRefreshJob struct {
	catalog CatalogRefresher
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStoreCatalogRefreshJob takes a six-field cron spec (seconds first).
// An empty spec falls back to DefaultStoreCatalogRefreshSpec.
func NewStoreCatalogRefreshJob(catalog CatalogRefresher, spec string, logger *slog.Logger) *StoreCatalogRefreshJob {
	if spec == "" {
		spec = DefaultStoreCatalogRefreshSpec
	}

	return &StoreCatalogRefreshJob{
		catalog: catalog,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "store_catalog_refresh_job"),
	}
}

func (j *StoreCatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.RunOnce); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store catalog refresh job started", "schedule", j.spec)
	return nil
}

// RunOnce performs a single refresh. Failures are logged and the previous
// snapshot stays in place.
func (j *StoreCatalogRefreshJob) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := j.catalog.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Store catalog refresh failed", "error", err)
	}
}

// Stop waits for a running refresh to finish.
func (j *StoreCatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Store catalog refresh job stopped")
}
