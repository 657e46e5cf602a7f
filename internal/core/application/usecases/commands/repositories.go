// Package commands contains the operations that change tracking state.
// Every handler validates its command, runs inside a unit of work and commits
// only when the whole operation succeeded.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of one command.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	TravelRecordRepoFactory interface {
		TravelRecordRepository() ports.TravelRecordRepository
	}

	// StoreUoW is used by commands that only touch the store catalog.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// TravelUoW is used by commands that append to the travel log.
	TravelUoW interface {
		TxManager
		TravelRecordRepoFactory
	}

	TravelUoWFactory interface {
		Create() TravelUoW
	}

	// StoreCatalogInvalidator drops a cached store list so the next read reloads it.
	StoreCatalogInvalidator interface {
		Invalidate()
	}
)
