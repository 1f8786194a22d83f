package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance creates or overwrites the record for the employee and date
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// GetEmployeeAttendance returns the history for a human-facing employee_id
	GetEmployeeAttendance(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// GetTodayPresent lists who is marked Present today
	GetTodayPresent(ctx context.Context) ([]PresentResponse, error)
}
