package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bloodbank-data/internal/domain"
)

type PostgresOrdersRepository struct {
	db *sql.DB
}

func NewPostgresOrdersRepository(db *sql.DB) *PostgresOrdersRepository {
	return &PostgresOrdersRepository{db: db}
}

func (r *PostgresOrdersRepository) ListOrders(ctx context.Context) ([]*domain.OrderWithHospital, error) {
	q := `
		SELECT o.order_id, o.hosp_id, h.hosp_name, o.blood_grp, o.quantity, o.status, o.order_date
		FROM orders o
		JOIN hospitals h ON o.hosp_id = h.hosp_id
		ORDER BY o.order_date DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrdersWithHospital(rows)
}

func (r *PostgresOrdersRepository) ListPendingOrders(ctx context.Context, limit int) ([]*domain.OrderWithHospital, error) {
	q := `
		SELECT o.order_id, o.hosp_id, h.hosp_name, o.blood_grp, o.quantity, o.status, o.order_date
		FROM orders o
		JOIN hospitals h ON o.hosp_id = h.hosp_id
		WHERE o.status = 'Pending'
		ORDER BY o.order_date DESC
	`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrdersWithHospital(rows)
}

func (r *PostgresOrdersRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order_id is required")
	}
	q := `
		SELECT order_id, hosp_id, blood_grp, quantity, status, order_date
		FROM orders
		WHERE order_id = $1
	`
	var o domain.Order
	err := r.db.QueryRowContext(ctx, q, orderID).Scan(
		&o.OrderID, &o.HospitalID, &o.BloodGroup, &o.Quantity, &o.Status, &o.OrderDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found: order_id=%s: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return &o, nil
}

func scanOrdersWithHospital(rows *sql.Rows) ([]*domain.OrderWithHospital, error) {
	out := []*domain.OrderWithHospital{}
	for rows.Next() {
		var o domain.OrderWithHospital
		if err := rows.Scan(
			&o.OrderID, &o.HospitalID, &o.HospitalName, &o.BloodGroup, &o.Quantity, &o.Status, &o.OrderDate,
		); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
