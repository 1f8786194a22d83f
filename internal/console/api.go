// Package console implements the HRMS Lite screens: the employee form and
// list, plus the Employees, Attendance and Dashboard pages. Each screen
// fetches its own data and refetches after a mutation.
package console

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrms-lite/hrms-go/internal/client"
)

// API is the subset of *client.Client the screens depend on.
type API interface {
	ListEmployees(ctx context.Context) ([]client.Employee, error)
	CreateEmployee(ctx context.Context, in client.EmployeeInput) (client.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (client.Message, error)
	CountEmployees(ctx context.Context) (client.EmployeeCounts, error)
	TodayPresent(ctx context.Context) ([]client.AttendanceRecord, error)
	EmployeeAttendance(ctx context.Context, employeeID string) ([]client.AttendanceRecord, error)
	MarkAttendance(ctx context.Context, in client.AttendanceInput) (client.Message, error)
}

var _ API = (*client.Client)(nil)

// Option configures a page.
type Option func(*options)

type options struct {
	logger *slog.Logger
	now    func() time.Time
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

const dateLayout = "2006-01-02"

func (o options) today() string {
	return o.now().Format(dateLayout)
}
