package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bloodbank-data/internal/domain"
	"bloodbank-data/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService staff registry. Employee ids are store-generated (uuid),
// unlike the form-supplied donor/hospital ids.
type EmployeeService struct {
	employeesRepo repository.EmployeesRepository
	logger        *zap.Logger
}

func NewEmployeeService(employeesRepo repository.EmployeesRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employeesRepo: employeesRepo, logger: logger}
}

// CreateEmployeeRequest employee form fields
type CreateEmployeeRequest struct {
	Name        string `json:"emp_name"`
	Email       string `json:"email"`
	Salary      int    `json:"salary"`
	Designation string `json:"designation"`
	JoiningDate string `json:"joining_date"` // YYYY-MM-DD
	Contact     string `json:"bb_contact"`
	BloodBankID int    `json:"bb_id"`
	Address     string `json:"bb_address"`
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	if req.Name == "" || req.Email == "" || req.Address == "" {
		return nil, fmt.Errorf("emp_name, email and bb_address are required")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if err := validateDesignation(req.Designation); err != nil {
		return nil, err
	}
	if req.Salary < 0 {
		return nil, fmt.Errorf("salary must be non-negative")
	}
	if req.BloodBankID < 1 {
		return nil, fmt.Errorf("bb_id must be positive")
	}
	if err := validateContact(req.Contact); err != nil {
		return nil, err
	}
	joining, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return nil, fmt.Errorf("joining_date must be YYYY-MM-DD")
	}

	employee := &domain.Employee{
		EmployeeID:  uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Salary:      req.Salary,
		Designation: req.Designation,
		JoiningDate: joining,
		Contact:     req.Contact,
		BloodBankID: req.BloodBankID,
		Address:     req.Address,
	}
	if err := s.employeesRepo.CreateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("Employee created",
		zap.String("emp_id", employee.EmployeeID),
		zap.String("designation", employee.Designation),
	)
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := s.employeesRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}
