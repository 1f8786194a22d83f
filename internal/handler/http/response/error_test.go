package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "Employee not found"},
		{"exists", employee.ErrEmployeeExists, http.StatusBadRequest, "Employee already exists"},
		{"bad status", attendance.ErrInvalidStatus, http.StatusBadRequest, "Status must be Present or Absent"},
		{"validation", validator.ValidationErrors{{Field: "email", Message: "bad"}}, http.StatusUnprocessableEntity, "Validation failed"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, c.err)

			assert.Equal(t, c.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, c.detail, body.Detail)
		})
	}
}

func TestValidationError_CarriesFields(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationError(w, map[string]string{"date": "date is required"})

	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "date is required", body.Errors["date"])
}
