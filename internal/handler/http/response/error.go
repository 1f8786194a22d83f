package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		BadRequest(w, "Employee already exists")
	case errors.Is(err, employee.ErrInvalidID):
		ValidationError(w, map[string]string{"employee_id": err.Error()})

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Status must be Present or Absent")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
