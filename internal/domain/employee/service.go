package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee rejects a duplicate employee_id or email
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// DeleteEmployee removes the employee and, by cascade, their attendance
	DeleteEmployee(ctx context.Context, id int64) error

	CountEmployees(ctx context.Context) (CountResponse, error)
}
