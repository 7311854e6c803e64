package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"dineout/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrEmptyCart     = errors.New("cannot checkout an empty cart")
	ErrOrderNotFound = errors.New("order not found")
)

// DeliveryFee is the flat fee shown next to the subtotal at presentation
// time. It is never folded into a stored order total.
const DeliveryFee = 3.99

type CheckoutRequest struct {
	RestaurantID    string
	RestaurantName  string
	Items           []domain.OrderItem
	DeliveryAddress string
	PaymentMethod   string
}

// OrderService turns cart snapshots into orders and keeps the append-only
// order history. History is process-local; orders are never mutated or
// deleted once created.
type OrderService struct {
	mu        sync.Mutex
	history   []domain.Order
	byID      map[string]int
	publisher OrderPublisher
	now       func() time.Time
}

// NewOrderService builds a service. publisher may be nil, in which case
// order events are skipped.
func NewOrderService(publisher OrderPublisher) *OrderService {
	return &OrderService{
		byID:      make(map[string]int),
		publisher: publisher,
		now:       time.Now,
	}
}

// Checkout creates an immutable order from a cart snapshot and appends it to
// history. Confirmation is immediate and unconditional; there is no backend
// to wait on. An empty snapshot is rejected with ErrEmptyCart.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(req.Items))
	copy(items, req.Items)

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		RestaurantID:    req.RestaurantID,
		RestaurantName:  req.RestaurantName,
		Items:           items,
		Total:           total,
		Status:          domain.StatusConfirmed,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	s.byID[order.ID] = len(s.history)
	s.history = append(s.history, order)
	s.mu.Unlock()

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:         "order_created",
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Total:        order.Total,
			Timestamp:    order.CreatedAt,
		}
		for _, item := range items {
			event.Items = append(event.Items, domain.OrderEventItem{
				ItemID:   item.ItemID,
				Quantity: item.Quantity,
			})
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			logger.Warn().Err(err).Str("order_id", order.ID).Msg("failed to publish order event")
		}
	}

	logger.Info().Str("order_id", order.ID).Str("restaurant_id", order.RestaurantID).
		Float64("total", order.Total).Msg("order created")

	return order, nil
}

// ListOrders returns the history in insertion order.
func (s *OrderService) ListOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.history))
	copy(out, s.history)
	return out
}

func (s *OrderService) GetOrder(id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Order{}, ErrOrderNotFound
	}
	return s.history[i], nil
}
