package queries_test

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/travel"

	"github.com/stretchr/testify/mock"
)

type MockTravelHistoryReader struct{ mock.Mock }

func (m *MockTravelHistoryReader) FindByCourier(ctx context.Context, courierID string) ([]*travel.Record, error) {
	args := m.Called(ctx, courierID)
	records, _ := args.Get(0).([]*travel.Record)
	return records, args.Error(1)
}

func (m *MockTravelHistoryReader) FindByCourierStoreAndRange(
	ctx context.Context, courierID, storeName string, start, end time.Time,
) ([]*travel.Record, error) {
	args := m.Called(ctx, courierID, storeName, start, end)
	records, _ := args.Get(0).([]*travel.Record)
	return records, args.Error(1)
}
