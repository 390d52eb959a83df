package repository

import (
	"context"

	"bloodbank-data/internal/domain"
)

// SupplyRepository read access to the append-only supply history.
// Inserts happen through InventoryRepository.RecordSupply so the matching
// stock increment commits in the same transaction.
type SupplyRepository interface {
	// ListSupplies joined with hospital names, newest first.
	ListSupplies(ctx context.Context) ([]*domain.SupplyWithHospital, error)
}
