package repository

import (
	"context"

	"bloodbank-data/internal/domain"
)

// OrdersRepository read access to the orders table.
// Order mutations (place/fulfil/cancel) live on InventoryRepository because
// they move stock in the same transaction.
type OrdersRepository interface {
	// ListOrders joined with hospital names, newest first.
	ListOrders(ctx context.Context) ([]*domain.OrderWithHospital, error)
	// ListPendingOrders the orders still eligible for fulfil/cancel.
	ListPendingOrders(ctx context.Context, limit int) ([]*domain.OrderWithHospital, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}
