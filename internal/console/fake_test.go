package console

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/hrms-lite/hrms-go/internal/client"
)

var errBoom = errors.New("connection refused")

// fakeAPI counts calls per operation. Unset funcs return zero values.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	listEmployees      func() ([]client.Employee, error)
	createEmployee     func(client.EmployeeInput) (client.Employee, error)
	deleteEmployee     func(int64) (client.Message, error)
	countEmployees     func() (client.EmployeeCounts, error)
	todayPresent       func() ([]client.AttendanceRecord, error)
	employeeAttendance func(string) ([]client.AttendanceRecord, error)
	markAttendance     func(client.AttendanceInput) (client.Message, error)
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAPI) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) ListEmployees(ctx context.Context) ([]client.Employee, error) {
	f.record("ListEmployees")
	if f.listEmployees == nil {
		return nil, nil
	}
	return f.listEmployees()
}

func (f *fakeAPI) CreateEmployee(ctx context.Context, in client.EmployeeInput) (client.Employee, error) {
	f.record("CreateEmployee")
	if f.createEmployee == nil {
		return client.Employee{EmployeeID: in.EmployeeID}, nil
	}
	return f.createEmployee(in)
}

func (f *fakeAPI) DeleteEmployee(ctx context.Context, id int64) (client.Message, error) {
	f.record("DeleteEmployee")
	if f.deleteEmployee == nil {
		return client.Message{Message: "Employee deleted successfully"}, nil
	}
	return f.deleteEmployee(id)
}

func (f *fakeAPI) CountEmployees(ctx context.Context) (client.EmployeeCounts, error) {
	f.record("CountEmployees")
	if f.countEmployees == nil {
		return client.EmployeeCounts{}, nil
	}
	return f.countEmployees()
}

func (f *fakeAPI) TodayPresent(ctx context.Context) ([]client.AttendanceRecord, error) {
	f.record("TodayPresent")
	if f.todayPresent == nil {
		return nil, nil
	}
	return f.todayPresent()
}

func (f *fakeAPI) EmployeeAttendance(ctx context.Context, employeeID string) ([]client.AttendanceRecord, error) {
	f.record("EmployeeAttendance")
	if f.employeeAttendance == nil {
		return nil, nil
	}
	return f.employeeAttendance(employeeID)
}

func (f *fakeAPI) MarkAttendance(ctx context.Context, in client.AttendanceInput) (client.Message, error) {
	f.record("MarkAttendance")
	if f.markAttendance == nil {
		return client.Message{Message: "Attendance marked"}, nil
	}
	return f.markAttendance(in)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.Local) }
}

var sampleEmployees = []client.Employee{
	{ID: 1, EmployeeID: "E001", FullName: "Asha Rao", Email: "asha@corp.io", Department: "Ops"},
	{ID: 2, EmployeeID: "E002", FullName: "Ravi Kumar", Email: "ravi@corp.io", Department: "IT"},
	{ID: 3, EmployeeID: "X-RAVI", FullName: "Meera Iyer", Email: "meera@corp.io", Department: "HR"},
}
