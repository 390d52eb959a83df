package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bloodbank-data/internal/domain"
)

type PostgresEmployeesRepository struct {
	db *sql.DB
}

func NewPostgresEmployeesRepository(db *sql.DB) *PostgresEmployeesRepository {
	return &PostgresEmployeesRepository{db: db}
}

func (r *PostgresEmployeesRepository) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	q := `
		SELECT emp_id::text, emp_name, email, salary, designation, joining_date, bb_contact, bb_id, bb_address
		FROM employees
		ORDER BY emp_name
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.EmployeeID,
			&e.Name,
			&e.Email,
			&e.Salary,
			&e.Designation,
			&e.JoiningDate,
			&e.Contact,
			&e.BloodBankID,
			&e.Address,
		); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *PostgresEmployeesRepository) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	if employee == nil {
		return fmt.Errorf("employee is required")
	}
	q := `
		INSERT INTO employees (emp_id, emp_name, email, salary, designation, joining_date, bb_contact, bb_id, bb_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, q,
		employee.EmployeeID,
		employee.Name,
		employee.Email,
		employee.Salary,
		employee.Designation,
		employee.JoiningDate,
		employee.Contact,
		employee.BloodBankID,
		employee.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee %s: %w", employee.EmployeeID, ErrDuplicateID)
		}
		return err
	}
	return nil
}
