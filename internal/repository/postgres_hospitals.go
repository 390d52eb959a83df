package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bloodbank-data/internal/domain"
)

type PostgresHospitalsRepository struct {
	db *sql.DB
}

func NewPostgresHospitalsRepository(db *sql.DB) *PostgresHospitalsRepository {
	return &PostgresHospitalsRepository{db: db}
}

func (r *PostgresHospitalsRepository) ListHospitals(ctx context.Context) ([]*domain.Hospital, error) {
	q := `
		SELECT hosp_id, hosp_name, location
		FROM hospitals
		ORDER BY hosp_name
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Hospital{}
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.HospitalID, &h.Name, &h.Location); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

func (r *PostgresHospitalsRepository) GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	if hospitalID == "" {
		return nil, fmt.Errorf("hosp_id is required")
	}
	q := `
		SELECT hosp_id, hosp_name, location
		FROM hospitals
		WHERE hosp_id = $1
	`
	var h domain.Hospital
	err := r.db.QueryRowContext(ctx, q, hospitalID).Scan(&h.HospitalID, &h.Name, &h.Location)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("hospital not found: hosp_id=%s: %w", hospitalID, ErrNotFound)
		}
		return nil, err
	}
	return &h, nil
}

func (r *PostgresHospitalsRepository) CreateHospital(ctx context.Context, hospital *domain.Hospital) error {
	if hospital == nil {
		return fmt.Errorf("hospital is required")
	}
	q := `
		INSERT INTO hospitals (hosp_id, hosp_name, location)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, q, hospital.HospitalID, hospital.Name, hospital.Location)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("hospital %s: %w", hospital.HospitalID, ErrDuplicateID)
		}
		return err
	}
	return nil
}
