package commands_test

import (
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStoreCommand_ValidInput(t *testing.T) {
	loc, _ := kernel.NewCoordinate(40.9923307, 29.1244229)
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateStoreCommand(" Ataşehir MMM Migros ", loc, createdAt)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Ataşehir MMM Migros", cmd.Name())
	assert.Equal(t, loc, cmd.Location())
	assert.Equal(t, createdAt, cmd.CreatedAt())
}

func TestNewCreateStoreCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateStoreCommand("", kernel.Coordinate{}, time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)
	assert.Contains(t, err.Error(), "createdAt")
}

func TestCreateStoreCommand_ZeroValue(t *testing.T) {
	require.ErrorIs(t, commands.CreateStoreCommand{}.Validate(), commands.ErrCreateStoreCommandIsNotConstructed)
}
