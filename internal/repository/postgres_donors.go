package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bloodbank-data/internal/domain"
)

type PostgresDonorsRepository struct {
	db *sql.DB
}

func NewPostgresDonorsRepository(db *sql.DB) *PostgresDonorsRepository {
	return &PostgresDonorsRepository{db: db}
}

func (r *PostgresDonorsRepository) ListDonors(ctx context.Context) ([]*domain.Donor, error) {
	q := `
		SELECT dona_id, dona_name, blood_grp, dona_contact
		FROM donors
		ORDER BY dona_name
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Donor{}
	for rows.Next() {
		var d domain.Donor
		if err := rows.Scan(&d.DonorID, &d.DonorName, &d.BloodGroup, &d.Contact); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// ListRecentDonors: dashboard panel, name order like the original view.
func (r *PostgresDonorsRepository) ListRecentDonors(ctx context.Context, limit int) ([]*domain.Donor, error) {
	if limit <= 0 {
		limit = 5
	}
	q := `
		SELECT dona_id, dona_name, blood_grp, dona_contact
		FROM donors
		ORDER BY dona_name
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Donor{}
	for rows.Next() {
		var d domain.Donor
		if err := rows.Scan(&d.DonorID, &d.DonorName, &d.BloodGroup, &d.Contact); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *PostgresDonorsRepository) GetDonor(ctx context.Context, donorID string) (*domain.Donor, error) {
	if donorID == "" {
		return nil, fmt.Errorf("dona_id is required")
	}
	q := `
		SELECT dona_id, dona_name, blood_grp, dona_contact
		FROM donors
		WHERE dona_id = $1
	`
	var d domain.Donor
	err := r.db.QueryRowContext(ctx, q, donorID).Scan(&d.DonorID, &d.DonorName, &d.BloodGroup, &d.Contact)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("donor not found: dona_id=%s: %w", donorID, ErrNotFound)
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresDonorsRepository) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	if donor == nil {
		return fmt.Errorf("donor is required")
	}
	q := `
		INSERT INTO donors (dona_id, dona_name, blood_grp, dona_contact)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, q, donor.DonorID, donor.DonorName, donor.BloodGroup, donor.Contact)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("donor %s: %w", donor.DonorID, ErrDuplicateID)
		}
		return err
	}
	return nil
}
