package tests

import (
	"context"
	"testing"

	"dineout/internal/analytics"
	"dineout/internal/domain"
	"dineout/internal/mocks"
	"dineout/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestPopularityStore_RecordAndTop(t *testing.T) {
	rdb := setupTestRedis(t)
	store := storage.NewPopularityStore(rdb)
	ctx := context.Background()

	assert.NoError(t, store.RecordOrderItem(ctx, "1", "5", 2))
	assert.NoError(t, store.RecordOrderItem(ctx, "1", "1", 5))
	assert.NoError(t, store.RecordOrderItem(ctx, "1", "5", 1))
	// another restaurant's counters stay separate
	assert.NoError(t, store.RecordOrderItem(ctx, "2", "12", 9))

	top, err := store.TopItems(ctx, "1", 10)
	assert.NoError(t, err)
	assert.Equal(t, []storage.ItemCount{
		{ItemID: "1", Count: 5},
		{ItemID: "5", Count: 3},
	}, top)

	top, err = store.TopItems(ctx, "1", 1)
	assert.NoError(t, err)
	assert.Len(t, top, 1)
	assert.Equal(t, "1", top[0].ItemID)
}

func TestPopularityStore_TopItems_Empty(t *testing.T) {
	rdb := setupTestRedis(t)
	store := storage.NewPopularityStore(rdb)

	top, err := store.TopItems(context.Background(), "none", 0)
	assert.NoError(t, err)
	assert.Empty(t, top)
}

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name         string
		event        domain.OrderEvent
		prepareMocks func(*mocks.PopularityRecorder)
	}{
		{
			name: "success",
			event: domain.OrderEvent{
				Type:         "order_created",
				OrderID:      "o1",
				RestaurantID: "1",
				Items: []domain.OrderEventItem{
					{ItemID: "1", Quantity: 2},
					{ItemID: "5", Quantity: 1},
				},
			},
			prepareMocks: func(store *mocks.PopularityRecorder) {
				store.On("RecordOrderItem", mock.Anything, "1", "1", 2).Return(nil).Once()
				store.On("RecordOrderItem", mock.Anything, "1", "5", 1).Return(nil).Once()
			},
		},
		{
			name: "record_error_stops_processing",
			event: domain.OrderEvent{
				Type:         "order_created",
				OrderID:      "o2",
				RestaurantID: "1",
				Items: []domain.OrderEventItem{
					{ItemID: "1", Quantity: 2},
					{ItemID: "5", Quantity: 1},
				},
			},
			prepareMocks: func(store *mocks.PopularityRecorder) {
				store.On("RecordOrderItem", mock.Anything, "1", "1", 2).
					Return(assert.AnError).Once()
			},
		},
		{
			name: "ignores_other_event_types",
			event: domain.OrderEvent{
				Type:         "order_updated",
				RestaurantID: "1",
				Items:        []domain.OrderEventItem{{ItemID: "1", Quantity: 2}},
			},
			prepareMocks: func(store *mocks.PopularityRecorder) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewPopularityRecorder(t)
			testCase.prepareMocks(store)

			consumer := &analytics.Consumer{Store: store}
			consumer.ProcessOrder(context.Background(), testCase.event)
		})
	}
}
