// Package analytics consumes order events and feeds the popularity
// counters. It never touches cart or order-history state.
package analytics

import (
	"context"
	"encoding/json"
	"os"

	"dineout/internal/domain"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type PopularityRecorder interface {
	RecordOrderItem(ctx context.Context, restaurantID, itemID string, quantity int) error
}

type Consumer struct {
	Reader *kafka.Reader
	Store  PopularityRecorder
}

func NewConsumer(reader *kafka.Reader, store PopularityRecorder) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

// Start blocks, reading order events until ctx is cancelled or the reader
// fails permanently.
func (c *Consumer) Start(ctx context.Context) {
	logger.Info().Msg("starting order analytics consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error().Err(err).Msg("error reading message")
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Error().Err(err).Msg("error unmarshaling order event")
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

// ProcessOrder applies one order event to the popularity counters.
func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != "order_created" {
		return
	}

	for _, item := range event.Items {
		if err := c.Store.RecordOrderItem(ctx, event.RestaurantID, item.ItemID, item.Quantity); err != nil {
			logger.Error().Err(err).Str("order_id", event.OrderID).
				Str("item_id", item.ItemID).Msg("error recording order item")
			return
		}
	}

	logger.Info().Str("order_id", event.OrderID).Int("items", len(event.Items)).
		Msg("processed order event")
}
