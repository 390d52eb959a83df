package repository

import (
	"context"

	"bloodbank-data/internal/domain"
)

// HospitalsRepository hospital registry access (insert-only).
type HospitalsRepository interface {
	ListHospitals(ctx context.Context) ([]*domain.Hospital, error)
	GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error)
	CreateHospital(ctx context.Context, hospital *domain.Hospital) error
}
