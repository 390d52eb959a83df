package repository

import (
	"context"

	"bloodbank-data/internal/domain"
)

// EmployeesRepository staff registry access (insert-only).
type EmployeesRepository interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	CreateEmployee(ctx context.Context, employee *domain.Employee) error
}
