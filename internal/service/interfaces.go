package service

import (
	"context"

	"dineout/internal/domain"
)

type OrderServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (domain.Order, error)
	ListOrders() []domain.Order
	GetOrder(id string) (domain.Order, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
