package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrms-lite/hrms-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	tx           database.Transactor
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(tx database.Transactor, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.employeeRepo.ExistsByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmployeeExists
		}

		created, err = s.employeeRepo.Create(ctx, employee.Employee{
			EmployeeID: req.EmployeeID,
			FullName:   req.FullName,
			Email:      req.Email,
			Department: req.Department,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeExists) {
			slog.Error("Failed to create employee", "employee_id", req.EmployeeID, "error", err)
		}
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "id", created.ID, "employee_id", created.EmployeeID)
	return employee.NewEmployeeResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.NewEmployeeResponse(emp))
	}
	return result, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return employee.ErrInvalidID
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Employee deleted", "id", id)
	return nil
}

// CountEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CountEmployees(ctx context.Context) (employee.CountResponse, error) {
	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return employee.CountResponse{}, fmt.Errorf("count employees: %w", err)
	}
	return employee.CountResponse{TotalUsers: total}, nil
}
