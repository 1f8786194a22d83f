package attendance

import (
	"strings"
	"time"

	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// Validate checks the date only. An empty employee_id is reported as an
// unknown employee and an empty status as an invalid one, after the lookup.
func (r MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns Date as a calendar day. Call after Validate.
func (r MarkAttendanceRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

var validStatuses = []string{string(StatusPresent), string(StatusAbsent)}

// NormalizeStatus upper-cases the first letter and lower-cases the rest, so
// "present" and "PRESENT" both become Present.
func NormalizeStatus(raw string) (Status, error) {
	s := cases.Title(language.Und).String(strings.TrimSpace(raw))
	if !validator.IsInSlice(s, validStatuses) {
		return "", ErrInvalidStatus
	}
	return Status(s), nil
}

type MarkAttendanceResponse struct {
	Message string `json:"message"`
}

const (
	MessageMarked  = "Attendance marked"
	MessageUpdated = "Attendance updated"
)

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

type PresentResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}
