package commands

import (
	"errors"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand provisions a store in the catalog.
//
// Example:
//
//	loc, _ := kernel.NewCoordinate(40.9923307, 29.1244229)
//	cmd, err := NewCreateStoreCommand("Ataşehir MMM Migros", loc, time.Now())
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	name      string
	location  kernel.Coordinate
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewCreateStoreCommand(name string, location kernel.Coordinate, createdAt time.Time) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setLocation(location),
		cmd.setCreatedAt(createdAt),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

func (c CreateStoreCommand) Name() string {
	return c.name
}

func (c CreateStoreCommand) Location() kernel.Coordinate {
	return c.location
}

func (c CreateStoreCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateStoreCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateStoreCommand) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreateStoreCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}
