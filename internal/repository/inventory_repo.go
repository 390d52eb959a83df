package repository

import (
	"context"

	"bloodbank-data/internal/domain"
)

// InventoryRepository the storage_house ledger plus the order/supply
// mutations that move stock. Every multi-statement sequence runs inside a
// single transaction with the stock precondition re-checked under row locks,
// so a failure partway through rolls everything back and concurrent orders
// cannot overdraw a blood group.
type InventoryRepository interface {
	ListLots(ctx context.Context) ([]*domain.StorageLot, error)
	GetLot(ctx context.Context, storageID string) (*domain.StorageLot, error)
	// Availability total units per blood group, largest stock first.
	Availability(ctx context.Context) ([]*domain.GroupAvailability, error)

	// PlaceOrder inserts a Pending order and deducts order.Quantity from the
	// group's lots, lowest storage_id first. Returns ErrInsufficientStock
	// (nothing written) when the group's total is short, ErrDuplicateID when
	// the order id is taken.
	PlaceOrder(ctx context.Context, order *domain.Order) error

	// FulfillOrder Pending -> Fulfilled. No stock movement: units were
	// already deducted when the order was placed.
	FulfillOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// CancelOrder Pending -> Cancelled and credits the order's quantity back
	// to its blood group: onto the group's lowest-storage_id lot, or a new
	// "RET<order-id>" lot when the group has none. Returns ErrOrderNotPending
	// for missing or already-terminal orders.
	CancelOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// RecordSupply appends the supply row and upserts the "SUP<supply-id>"
	// lot in the same transaction.
	RecordSupply(ctx context.Context, supply *domain.Supply) error

	// AddStock manual adjustment: increment the lot or create it.
	AddStock(ctx context.Context, storageID, bloodGroup string, quantity int) error
	// RemoveStock manual adjustment: decrement with a floor of zero; no-op
	// when the storage id does not exist.
	RemoveStock(ctx context.Context, storageID string, quantity int) error
}
