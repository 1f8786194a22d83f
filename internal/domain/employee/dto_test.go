package employee

import (
	"testing"

	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{EmployeeID: "E001", FullName: "Asha Rao", Email: "asha@corp.io", Department: "Finance"}
	assert.NoError(t, valid.Validate())

	err := CreateEmployeeRequest{EmployeeID: " ", Email: "not-an-email"}.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "full_name")
	assert.Equal(t, "value is not a valid email address", fields["email"])
	assert.Contains(t, fields, "department")
}

func TestCreateEmployeeRequest_Normalize(t *testing.T) {
	req := CreateEmployeeRequest{EmployeeID: " E002 ", FullName: " Dev ", Email: " dev@corp.io ", Department: " Ops "}
	req.Normalize()

	assert.Equal(t, CreateEmployeeRequest{EmployeeID: "E002", FullName: "Dev", Email: "dev@corp.io", Department: "Ops"}, req)
}
