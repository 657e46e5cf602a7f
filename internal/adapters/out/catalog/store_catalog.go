// Package catalog keeps an in-memory snapshot of the store list so that
// location pings do not query the stores table each time.
package catalog

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"tracking/internal/core/domain/model/store"
	"tracking/internal/core/ports"
)

// StoreLister is the source of truth the snapshot is loaded from.
type StoreLister interface {
	ListAll(ctx context.Context) ([]*store.Store, error)
}

// StoreCatalog is safe for concurrent use. A snapshot is loaded lazily on the
// first read after construction or Invalidate, and replaced by Refresh.
type StoreCatalog struct {
	source StoreLister
	logger *slog.Logger

	mu         sync.RWMutex
	stores     []*store.Store
	loaded     bool
	generation uint64
}

var _ ports.StoreCatalog = (*StoreCatalog)(nil)

func NewStoreCatalog(source StoreLister, logger *slog.Logger) *StoreCatalog {
	return &StoreCatalog{
		source: source,
		logger: logger.With("component", "store_catalog"),
	}
}

// ListAllStores returns the stores in catalog order. The slice is a copy and
// may be modified by the caller.
func (c *StoreCatalog) ListAllStores(ctx context.Context) ([]*store.Store, error) {
	c.mu.RLock()
	if c.loaded {
		stores := slices.Clone(c.stores)
		c.mu.RUnlock()
		return stores, nil
	}
	c.mu.RUnlock()

	return c.load(ctx)
}

// Refresh reloads the snapshot from the source.
func (c *StoreCatalog) Refresh(ctx context.Context) error {
	_, err := c.load(ctx)
	return err
}

// Invalidate drops the snapshot. A load that was already running when
// Invalidate was called does not repopulate it. It is a no-op on a nil catalog.
func (c *StoreCatalog) Invalidate() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stores = nil
	c.loaded = false
	c.generation++
}

func (c *StoreCatalog) load(ctx context.Context) ([]*store.Store, error) {
	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	stores, err := c.source.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generation == generation {
		c.stores = stores
		c.loaded = true
	}
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "store catalog loaded", "stores", len(stores))

	return slices.Clone(stores), nil
}
