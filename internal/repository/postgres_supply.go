package repository

import (
	"context"
	"database/sql"

	"bloodbank-data/internal/domain"
)

type PostgresSupplyRepository struct {
	db *sql.DB
}

func NewPostgresSupplyRepository(db *sql.DB) *PostgresSupplyRepository {
	return &PostgresSupplyRepository{db: db}
}

func (r *PostgresSupplyRepository) ListSupplies(ctx context.Context) ([]*domain.SupplyWithHospital, error) {
	q := `
		SELECT s.supply_id, s.hosp_id, h.hosp_name, s.blood_grp, s.quantity, s.supply_date
		FROM supply s
		JOIN hospitals h ON s.hosp_id = h.hosp_id
		ORDER BY s.supply_date DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.SupplyWithHospital{}
	for rows.Next() {
		var s domain.SupplyWithHospital
		if err := rows.Scan(
			&s.SupplyID, &s.HospitalID, &s.HospitalName, &s.BloodGroup, &s.Quantity, &s.SupplyDate,
		); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
