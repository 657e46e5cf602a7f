package commands_test

import (
	"context"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/store"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) ListAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]*store.Store)
	return stores, args.Error(1)
}

type MockTravelRecordRepository struct{ mock.Mock }

func (m *MockTravelRecordRepository) Append(ctx context.Context, r *travel.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTravelRecordRepository) FindRecent(
	ctx context.Context, courierID, storeName string, start, end time.Time,
) (*travel.Record, error) {
	args := m.Called(ctx, courierID, storeName, start, end)
	r, _ := args.Get(0).(*travel.Record)
	return r, args.Error(1)
}

func (m *MockTravelRecordRepository) FindByCourier(ctx context.Context, courierID string) ([]*travel.Record, error) {
	args := m.Called(ctx, courierID)
	records, _ := args.Get(0).([]*travel.Record)
	return records, args.Error(1)
}

func (m *MockTravelRecordRepository) FindByCourierStoreAndRange(
	ctx context.Context, courierID, storeName string, start, end time.Time,
) ([]*travel.Record, error) {
	args := m.Called(ctx, courierID, storeName, start, end)
	records, _ := args.Get(0).([]*travel.Record)
	return records, args.Error(1)
}

func (m *MockTravelRecordRepository) LockCourierStore(ctx context.Context, courierID, storeName string) error {
	args := m.Called(ctx, courierID, storeName)
	return args.Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStoreUoW struct{ MockTx }

func (m *MockStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockStoreUoWFactory struct{ mock.Mock }

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

type MockTravelUoW struct{ MockTx }

func (m *MockTravelUoW) TravelRecordRepository() ports.TravelRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.TravelRecordRepository)
}

type MockTravelUoWFactory struct{ mock.Mock }

func (m *MockTravelUoWFactory) Create() commands.TravelUoW {
	args := m.Called()
	return args.Get(0).(commands.TravelUoW)
}

type MockStoreCatalog struct{ mock.Mock }

func (m *MockStoreCatalog) ListAllStores(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]*store.Store)
	return stores, args.Error(1)
}

func (m *MockStoreCatalog) Invalidate() {
	m.Called()
}

type MockTravelEventPublisher struct{ mock.Mock }

func (m *MockTravelEventPublisher) PublishTravelRecorded(ctx context.Context, r *travel.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
