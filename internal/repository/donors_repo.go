package repository

import (
	"context"

	"bloodbank-data/internal/domain"
)

// DonorsRepository donor registry access.
// Donors are insert-only: the dashboard never updates or deletes them.
type DonorsRepository interface {
	ListDonors(ctx context.Context) ([]*domain.Donor, error)
	ListRecentDonors(ctx context.Context, limit int) ([]*domain.Donor, error)
	GetDonor(ctx context.Context, donorID string) (*domain.Donor, error)
	CreateDonor(ctx context.Context, donor *domain.Donor) error
}
