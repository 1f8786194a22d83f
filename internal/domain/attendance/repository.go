package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert writes the status for (employeeRef, date). created is false when
	// an existing record was overwritten.
	Upsert(ctx context.Context, employeeRef int64, date time.Time, status Status) (created bool, err error)

	// ListByEmployee returns an employee's records, newest date first
	ListByEmployee(ctx context.Context, employeeRef int64) ([]Attendance, error)

	// ListPresentOn returns the distinct employees marked Present on date
	ListPresentOn(ctx context.Context, date time.Time) ([]PresentEmployee, error)
}
