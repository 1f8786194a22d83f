package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	location       *time.Location
	now            func() time.Time
}

type Option func(*AttendanceServiceImpl)

// WithClock overrides the time source used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) { s.now = now }
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
	opts ...Option,
) attendance.AttendanceService {
	if location == nil {
		location = time.Local
	}
	s := &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		location:       location,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns the current calendar day in the configured location, as
// midnight UTC so it compares equal to dates parsed from YYYY-MM-DD.
func (s *AttendanceServiceImpl) today() time.Time {
	y, m, d := s.now().In(s.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	status, err := attendance.NormalizeStatus(req.Status)
	if err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Upsert(ctx, emp.ID, req.ParsedDate(), status)
	if err != nil {
		slog.Error("Failed to mark attendance", "employee_id", req.EmployeeID, "date", req.Date, "error", err)
		return attendance.MarkAttendanceResponse{}, err
	}

	message := attendance.MessageUpdated
	if created {
		message = attendance.MessageMarked
	}
	slog.Info(message, "employee_id", req.EmployeeID, "date", req.Date, "status", status)

	return attendance.MarkAttendanceResponse{Message: message}, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("get attendance for %s: %w", employeeID, err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, attendance.AttendanceResponse{
			ID:         r.ID,
			FullName:   emp.FullName,
			EmployeeID: emp.EmployeeID,
			Date:       r.Date.Format(validator.DateLayout),
			Status:     r.Status,
		})
	}
	return result, nil
}

// GetTodayPresent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayPresent(ctx context.Context) ([]attendance.PresentResponse, error) {
	present, err := s.attendanceRepo.ListPresentOn(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("get today present: %w", err)
	}

	result := make([]attendance.PresentResponse, 0, len(present))
	for _, p := range present {
		result = append(result, attendance.PresentResponse{
			EmployeeID: p.EmployeeID,
			FullName:   p.FullName,
			Department: p.Department,
		})
	}
	return result, nil
}
