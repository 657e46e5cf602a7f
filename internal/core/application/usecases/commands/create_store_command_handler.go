package commands

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/store"
)

// CreateStoreCommandHandler persists new stores and invalidates the cached
// catalog so the next ping sees them.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
	catalog    StoreCatalogInvalidator
}

// NewCreateStoreCommandHandler accepts a nil catalog when no cache is in use.
// A typed nil is passed through, so its Invalidate must tolerate a nil receiver.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory, catalog StoreCatalogInvalidator) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	s, err := store.NewStore(cmd.Name(), cmd.Location(), cmd.CreatedAt())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, s); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if h.catalog != nil {
		h.catalog.Invalidate()
	}

	return s.ID(), nil
}
