package employee

import (
	"context"
	"testing"

	"github.com/hrms-lite/hrms-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
	"github.com/hrms-lite/hrms-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() employee.EmployeeService {
	store := memory.NewStore()
	return NewEmployeeService(store, store.Employees())
}

func validRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: "E001",
		FullName:   "Asha Rao",
		Email:      "asha@corp.io",
		Department: "Finance",
	}
}

// Test CreateEmployee - Success
func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := validRequest()
	req.FullName = "  Asha Rao  "
	resp, err := svc.CreateEmployee(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "E001", resp.EmployeeID)
	assert.Equal(t, "Asha Rao", resp.FullName)
}

// Test CreateEmployee - Duplicate employee_id or email
func TestEmployeeService_CreateEmployee_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateEmployee(ctx, validRequest())
	require.NoError(t, err)

	sameID := validRequest()
	sameID.Email = "other@corp.io"
	_, err = svc.CreateEmployee(ctx, sameID)
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)

	sameEmail := validRequest()
	sameEmail.EmployeeID = "E002"
	_, err = svc.CreateEmployee(ctx, sameEmail)
	assert.ErrorIs(t, err, employee.ErrEmployeeExists)
}

// Test CreateEmployee - Validation failure
func TestEmployeeService_CreateEmployee_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := validRequest()
	req.Email = "nope"
	_, err := svc.CreateEmployee(ctx, req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("email"))

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Test List, Count and Delete
func TestEmployeeService_ListCountDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.CreateEmployee(ctx, validRequest())
	require.NoError(t, err)
	second := validRequest()
	second.EmployeeID, second.Email = "E002", "dev@corp.io"
	_, err = svc.CreateEmployee(ctx, second)
	require.NoError(t, err)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "E001", list[0].EmployeeID)

	counts, err := svc.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.TotalUsers)

	require.NoError(t, svc.DeleteEmployee(ctx, first.ID))
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, first.ID), employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, 0), employee.ErrInvalidID)

	counts, err = svc.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.TotalUsers)
}
