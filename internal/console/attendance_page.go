package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/hrms-lite/hrms-go/internal/client"
	"github.com/hrms-lite/hrms-go/internal/console/notify"
)

type Mode string

const (
	ModeToday    Mode = "today"
	ModeEmployee Mode = "employee"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

var (
	ErrMissingFields   = errors.New("please fill in all fields")
	ErrInvalidDate     = errors.New("please enter a valid date")
	ErrMissingSearchID = errors.New("please enter an employee ID")
	ErrUnknownEmployee = errors.New("employee is not in the picker list")
)

// AttendanceForm is the mark-attendance input.
type AttendanceForm struct {
	EmployeeID string
	Date       string
	Status     string
}

func defaultAttendanceForm() AttendanceForm {
	return AttendanceForm{Status: StatusPresent}
}

// AttendancePage shows either today's present list or one employee's
// history, and marks attendance.
type AttendancePage struct {
	api      API
	notifier notify.Notifier
	opts     options

	Form AttendanceForm

	employees []client.Employee
	records   []client.AttendanceRecord
	mode      Mode
	searchID  string
	loading   bool
}

func NewAttendancePage(api API, n notify.Notifier, opts ...Option) *AttendancePage {
	return &AttendancePage{
		api:      api,
		notifier: n,
		opts:     newOptions(opts),
		Form:     defaultAttendanceForm(),
		mode:     ModeToday,
	}
}

func (p *AttendancePage) Mode() Mode                         { return p.mode }
func (p *AttendancePage) Records() []client.AttendanceRecord { return p.records }
func (p *AttendancePage) Employees() []client.Employee       { return p.employees }
func (p *AttendancePage) SearchID() string                   { return p.searchID }
func (p *AttendancePage) Loading() bool                      { return p.loading }

// Open loads the employee picker and then the today view.
func (p *AttendancePage) Open(ctx context.Context) {
	p.LoadEmployees(ctx)
	_ = p.LoadTodayPresent(ctx)
}

func (p *AttendancePage) LoadEmployees(ctx context.Context) {
	employees, err := p.api.ListEmployees(ctx)
	if err != nil {
		p.opts.logger.ErrorContext(ctx, "Failed to load employees", "error", err)
		p.notifier.Notify(notify.Error("Error", "Failed to load employees"))
		return
	}
	p.employees = employees
}

func (p *AttendancePage) LoadTodayPresent(ctx context.Context) error {
	p.loading = true
	defer func() { p.loading = false }()

	records, err := p.api.TodayPresent(ctx)
	if err != nil {
		p.opts.logger.ErrorContext(ctx, "Failed to load today's attendance", "error", err)
		p.notifier.Notify(notify.Error("Error", "Failed to load today's attendance"))
		p.records = nil
		return err
	}

	p.records = records
	p.mode = ModeToday
	if len(records) == 0 {
		p.notifier.Notify(notify.Info("No Attendance", "No employees marked present today"))
	}
	return nil
}

// SetSearchID updates the search box. Clearing it returns to the today view.
func (p *AttendancePage) SetSearchID(ctx context.Context, v string) {
	p.searchID = v
	if v == "" {
		_ = p.LoadTodayPresent(ctx)
	}
}

func (p *AttendancePage) Search(ctx context.Context) error {
	if strings.TrimSpace(p.searchID) == "" {
		p.notifier.Notify(notify.Error("Error", "Please enter an Employee ID"))
		return ErrMissingSearchID
	}

	p.loading = true
	defer func() { p.loading = false }()

	records, err := p.api.EmployeeAttendance(ctx, p.searchID)
	if err != nil {
		p.opts.logger.ErrorContext(ctx, "Failed to fetch attendance", "employee_id", p.searchID, "error", err)
		p.notifier.Notify(notify.Error("Error", client.DetailOr(err, "Failed to fetch attendance")))
		p.records = nil
		return err
	}

	p.records = records
	p.mode = ModeEmployee
	if len(records) == 0 {
		p.notifier.Notify(notify.Info("No Records", "No attendance found for this employee"))
	}
	return nil
}

// Submit marks attendance from Form. Incomplete or future-dated input never
// reaches the API.
func (p *AttendancePage) Submit(ctx context.Context) error {
	form := p.Form
	if form.EmployeeID == "" || form.Date == "" {
		p.notifier.Notify(notify.Error("Error", "Please fill in all fields"))
		return ErrMissingFields
	}

	today := p.opts.today()
	if _, err := time.Parse(dateLayout, form.Date); err != nil || form.Date > today {
		p.notifier.Notify(notify.Error("Error", "Please enter a valid date"))
		return ErrInvalidDate
	}

	if !p.hasEmployee(form.EmployeeID) {
		p.notifier.Notify(notify.Error("Error", "Please select an employee from the list"))
		return ErrUnknownEmployee
	}

	status := form.Status
	if status == "" {
		status = StatusPresent
	}

	_, err := p.api.MarkAttendance(ctx, client.AttendanceInput{
		EmployeeID: form.EmployeeID,
		Date:       form.Date,
		Status:     status,
	})
	if err != nil {
		p.opts.logger.ErrorContext(ctx, "Failed to mark attendance", "employee_id", form.EmployeeID, "error", err)
		p.notifier.Notify(notify.Error("Error", "Failed to mark attendance"))
		return err
	}

	p.notifier.Notify(notify.Info("Success", "Attendance marked successfully"))
	p.Form = defaultAttendanceForm()

	if p.mode == ModeToday && form.Date == today {
		_ = p.LoadTodayPresent(ctx)
	}
	return nil
}

// hasEmployee reports whether employeeID is one of the picker choices.
func (p *AttendancePage) hasEmployee(employeeID string) bool {
	for _, e := range p.employees {
		if e.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

// RenderChoices lists the employees the mark form accepts.
func (p *AttendancePage) RenderChoices(w io.Writer) error {
	return RenderEmployeeChoices(w, p.employees)
}

func (p *AttendancePage) Heading() string {
	if p.mode == ModeEmployee {
		return "Attendance history by employee"
	}
	return "Who is present today"
}

func (p *AttendancePage) Render(w io.Writer) error {
	return RenderAttendance(w, p.Heading(), p.records, p.loading, p.opts.today())
}
