package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bloodbank-data/internal/domain"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// ============================================
// Read side
// ============================================

func (r *PostgresInventoryRepository) ListLots(ctx context.Context) ([]*domain.StorageLot, error) {
	q := `
		SELECT storage_id, blood_grp, quantity
		FROM storage_house
		ORDER BY storage_id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.StorageLot{}
	for rows.Next() {
		var lot domain.StorageLot
		if err := rows.Scan(&lot.StorageID, &lot.BloodGroup, &lot.Quantity); err != nil {
			return nil, err
		}
		out = append(out, &lot)
	}
	return out, rows.Err()
}

func (r *PostgresInventoryRepository) GetLot(ctx context.Context, storageID string) (*domain.StorageLot, error) {
	if storageID == "" {
		return nil, fmt.Errorf("storage_id is required")
	}
	q := `
		SELECT storage_id, blood_grp, quantity
		FROM storage_house
		WHERE storage_id = $1
	`
	var lot domain.StorageLot
	err := r.db.QueryRowContext(ctx, q, storageID).Scan(&lot.StorageID, &lot.BloodGroup, &lot.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("storage lot not found: storage_id=%s: %w", storageID, ErrNotFound)
		}
		return nil, err
	}
	return &lot, nil
}

func (r *PostgresInventoryRepository) Availability(ctx context.Context) ([]*domain.GroupAvailability, error) {
	q := `
		SELECT blood_grp, SUM(quantity) AS total_units
		FROM storage_house
		GROUP BY blood_grp
		ORDER BY total_units DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.GroupAvailability{}
	for rows.Next() {
		var a domain.GroupAvailability
		if err := rows.Scan(&a.BloodGroup, &a.TotalUnits); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// ============================================
// Ledger mutations (single transaction each)
// ============================================

// PlaceOrder: lock the group's lots, re-check availability inside the
// transaction, insert the Pending order, then walk the lots lowest
// storage_id first deducting until the quantity is covered.
func (r *PostgresInventoryRepository) PlaceOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lots, err := lockLotsForGroup(ctx, tx, order.BloodGroup)
	if err != nil {
		return err
	}
	total := 0
	for _, lot := range lots {
		total += lot.Quantity
	}
	if total < order.Quantity {
		return fmt.Errorf("blood group %s: need %d units, have %d: %w",
			order.BloodGroup, order.Quantity, total, ErrInsufficientStock)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (order_id, hosp_id, blood_grp, quantity, status)
		 VALUES ($1, $2, $3, $4, 'Pending')`,
		order.OrderID, order.HospitalID, order.BloodGroup, order.Quantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("order %s: %w", order.OrderID, ErrDuplicateID)
		}
		return err
	}

	remaining := order.Quantity
	for _, lot := range lots {
		if remaining == 0 {
			break
		}
		take := lot.Quantity
		if take > remaining {
			take = remaining
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE storage_house SET quantity = quantity - $1 WHERE storage_id = $2`,
			take, lot.StorageID,
		); err != nil {
			return err
		}
		remaining -= take
	}

	return tx.Commit()
}

func (r *PostgresInventoryRepository) FulfillOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.finishOrder(ctx, orderID, domain.OrderStatusFulfilled)
}

func (r *PostgresInventoryRepository) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.finishOrder(ctx, orderID, domain.OrderStatusCancelled)
}

// finishOrder: guarded status transition; cancellation also returns the
// order's units to its blood group in the same transaction.
func (r *PostgresInventoryRepository) finishOrder(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order_id is required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The status predicate is the affected-row check: 0 rows means the order
	// is missing or already terminal, so a double cancel cannot credit twice.
	var o domain.Order
	err = tx.QueryRowContext(ctx,
		`UPDATE orders SET status = $1
		 WHERE order_id = $2 AND status = 'Pending'
		 RETURNING order_id, hosp_id, blood_grp, quantity, status, order_date`,
		status, orderID,
	).Scan(&o.OrderID, &o.HospitalID, &o.BloodGroup, &o.Quantity, &o.Status, &o.OrderDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotPending)
		}
		return nil, err
	}

	if status == domain.OrderStatusCancelled {
		if err := creditGroup(ctx, tx, o.BloodGroup, o.Quantity, "RET"+o.OrderID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PostgresInventoryRepository) RecordSupply(ctx context.Context, supply *domain.Supply) error {
	if supply == nil {
		return fmt.Errorf("supply is required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO supply (supply_id, hosp_id, blood_grp, quantity)
		 VALUES ($1, $2, $3, $4)`,
		supply.SupplyID, supply.HospitalID, supply.BloodGroup, supply.Quantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("supply %s: %w", supply.SupplyID, ErrDuplicateID)
		}
		return err
	}

	// Supply-derived lots are keyed SUP<supply-id>; the upsert tolerates a
	// pre-existing lot under that key.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO storage_house (storage_id, blood_grp, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (storage_id)
		 DO UPDATE SET quantity = storage_house.quantity + EXCLUDED.quantity`,
		"SUP"+supply.SupplyID, supply.BloodGroup, supply.Quantity,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ============================================
// Manual adjustments
// ============================================

func (r *PostgresInventoryRepository) AddStock(ctx context.Context, storageID, bloodGroup string, quantity int) error {
	if storageID == "" {
		return fmt.Errorf("storage_id is required")
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO storage_house (storage_id, blood_grp, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (storage_id)
		 DO UPDATE SET quantity = storage_house.quantity + EXCLUDED.quantity`,
		storageID, bloodGroup, quantity,
	)
	return err
}

func (r *PostgresInventoryRepository) RemoveStock(ctx context.Context, storageID string, quantity int) error {
	if storageID == "" {
		return fmt.Errorf("storage_id is required")
	}
	// Floor at zero; an absent storage_id is a no-op, matching the manual
	// adjustment form.
	_, err := r.db.ExecContext(ctx,
		`UPDATE storage_house SET quantity = GREATEST(0, quantity - $1) WHERE storage_id = $2`,
		quantity, storageID,
	)
	return err
}

// ============================================
// Transaction helpers
// ============================================

// lockLotsForGroup: the group's non-empty lots, lowest storage_id first,
// locked for the rest of the transaction.
func lockLotsForGroup(ctx context.Context, tx *sql.Tx, bloodGroup string) ([]*domain.StorageLot, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT storage_id, blood_grp, quantity
		 FROM storage_house
		 WHERE blood_grp = $1 AND quantity > 0
		 ORDER BY storage_id
		 FOR UPDATE`,
		bloodGroup,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.StorageLot{}
	for rows.Next() {
		var lot domain.StorageLot
		if err := rows.Scan(&lot.StorageID, &lot.BloodGroup, &lot.Quantity); err != nil {
			return nil, err
		}
		out = append(out, &lot)
	}
	return out, rows.Err()
}

// creditGroup adds quantity back to the group's lowest-storage_id lot, or
// creates fallbackLotID when the group has no lots at all.
func creditGroup(ctx context.Context, tx *sql.Tx, bloodGroup string, quantity int, fallbackLotID string) error {
	var storageID string
	err := tx.QueryRowContext(ctx,
		`SELECT storage_id FROM storage_house
		 WHERE blood_grp = $1
		 ORDER BY storage_id
		 LIMIT 1
		 FOR UPDATE`,
		bloodGroup,
	).Scan(&storageID)
	if err == sql.ErrNoRows {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO storage_house (storage_id, blood_grp, quantity) VALUES ($1, $2, $3)`,
			fallbackLotID, bloodGroup, quantity,
		)
		return err
	}
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE storage_house SET quantity = quantity + $1 WHERE storage_id = $2`,
		quantity, storageID,
	)
	return err
}
