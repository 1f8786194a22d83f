package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	// ExistsByEmployeeIDOrEmail reports whether either identifier is already taken.
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
