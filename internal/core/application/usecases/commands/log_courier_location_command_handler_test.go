package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/store"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pingTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func catalogWithStoreA(t *testing.T) *MockStoreCatalog {
	t.Helper()
	loc, err := kernel.NewCoordinate(40.0, 29.0)
	require.NoError(t, err)
	s, err := store.NewStore("A", loc, pingTime.Add(-time.Hour))
	require.NoError(t, err)

	catalog := new(MockStoreCatalog)
	catalog.On("ListAllStores", mock.Anything).Return([]*store.Store{s}, nil).Once()
	return catalog
}

func pingCommand(t *testing.T, lat, lng float64, ts time.Time) commands.LogCourierLocationCommand {
	t.Helper()
	loc, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	cmd, err := commands.NewLogCourierLocationCommand("courier-1", loc, ts)
	require.NoError(t, err)
	return cmd
}

func TestLogCourierLocationCommandHandler_Handle_Accepted(t *testing.T) {
	ctx := t.Context()
	catalog := catalogWithStoreA(t)
	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	publisher := new(MockTravelEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelRecordRepository").Return(repo).Once(),
		repo.On("LockCourierStore", ctx, "courier-1", "A").Return(nil).Once(),
		repo.On("FindRecent", ctx, "courier-1", "A", pingTime.Add(-time.Minute), pingTime).
			Return((*travel.Record)(nil), nil).Once(),
		repo.On("Append", ctx, mock.AnythingOfType("*travel.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishTravelRecorded", ctx, mock.AnythingOfType("*travel.Record")).Return(nil).Once()
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogCourierLocationCommandHandler(factory, catalog, publisher, true, discardLogger())
	result, err := h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.NoError(t, err)
	assert.Equal(t, "A", result.StoreName)
	assert.Equal(t, pingTime, result.Timestamp)
	require.NoError(t, result.RecordID.Validate())
	catalog.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestLogCourierLocationCommandHandler_Handle_ReentryTooSoon(t *testing.T) {
	ctx := t.Context()
	loc, _ := kernel.NewCoordinate(40.0, 29.0)
	previous, err := travel.RestoreRecord(kernel.NewUUID(), "courier-1", loc, "A", pingTime.Add(-30*time.Second))
	require.NoError(t, err)

	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelRecordRepository").Return(repo).Once(),
		repo.On("FindRecent", ctx, "courier-1", "A", mock.Anything, mock.Anything).Return(previous, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockTravelEventPublisher)

	h := commands.NewLogCourierLocationCommandHandler(factory, catalogWithStoreA(t), publisher, false, discardLogger())
	_, err = h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.ErrorIs(t, err, services.ErrReentryTooSoon)
	assert.Contains(t, err.Error(), `"A"`)
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "LockCourierStore", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishTravelRecorded", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestLogCourierLocationCommandHandler_Handle_NoStoreNearby(t *testing.T) {
	ctx := t.Context()
	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelRecordRepository").Return(repo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogCourierLocationCommandHandler(factory, catalogWithStoreA(t), nil, true, discardLogger())
	_, err := h.Handle(ctx, pingCommand(t, 40.0018, 29.0, pingTime))

	require.ErrorIs(t, err, services.ErrNoStoreNearby)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogCourierLocationCommandHandler_Handle_EmptyCatalog(t *testing.T) {
	ctx := t.Context()
	catalog := new(MockStoreCatalog)
	catalog.On("ListAllStores", ctx).Return([]*store.Store{}, nil).Once()
	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelRecordRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogCourierLocationCommandHandler(factory, catalog, nil, true, discardLogger())
	_, err := h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.ErrorIs(t, err, services.ErrStoreNotFound)
}

func TestLogCourierLocationCommandHandler_Handle_CatalogError(t *testing.T) {
	ctx := t.Context()
	catalog := new(MockStoreCatalog)
	catalog.On("ListAllStores", ctx).Return(nil, errors.New("catalog unavailable")).Once()
	factory := new(MockTravelUoWFactory)

	h := commands.NewLogCourierLocationCommandHandler(factory, catalog, nil, true, discardLogger())
	_, err := h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.EqualError(t, err, "catalog unavailable")
	factory.AssertNotCalled(t, "Create")
}

func TestLogCourierLocationCommandHandler_Handle_LockError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelRecordRepository").Return(repo).Once(),
		repo.On("LockCourierStore", ctx, "courier-1", "A").Return(errors.New("lock timeout")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogCourierLocationCommandHandler(factory, catalogWithStoreA(t), nil, true, discardLogger())
	_, err := h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.EqualError(t, err, "lock timeout")
	repo.AssertNotCalled(t, "FindRecent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogCourierLocationCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TravelRecordRepository").Return(repo).Once(),
		repo.On("FindRecent", ctx, "courier-1", "A", mock.Anything, mock.Anything).
			Return((*travel.Record)(nil), nil).Once(),
		repo.On("Append", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogCourierLocationCommandHandler(factory, catalogWithStoreA(t), nil, false, discardLogger())
	_, err := h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLogCourierLocationCommandHandler_Handle_PublishErrorIsNotFatal(t *testing.T) {
	ctx := t.Context()
	repo := new(MockTravelRecordRepository)
	uow := new(MockTravelUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TravelRecordRepository").Return(repo).Once()
	repo.On("FindRecent", ctx, "courier-1", "A", mock.Anything, mock.Anything).
		Return((*travel.Record)(nil), nil).Once()
	repo.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTravelUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockTravelEventPublisher)
	publisher.On("PublishTravelRecorded", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewLogCourierLocationCommandHandler(factory, catalogWithStoreA(t), publisher, false, discardLogger())
	result, err := h.Handle(ctx, pingCommand(t, 40.0, 29.0, pingTime))

	require.NoError(t, err)
	assert.Equal(t, "A", result.StoreName)
	publisher.AssertExpectations(t)
}

func TestLogCourierLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	catalog := new(MockStoreCatalog)
	h := commands.NewLogCourierLocationCommandHandler(new(MockTravelUoWFactory), catalog, nil, true, discardLogger())

	_, err := h.Handle(t.Context(), commands.LogCourierLocationCommand{})

	require.ErrorIs(t, err, commands.ErrLogCourierLocationCommandIsNotConstructed)
	catalog.AssertNotCalled(t, "ListAllStores", mock.Anything)
}
