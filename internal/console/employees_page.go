package console

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hrms-lite/hrms-go/internal/client"
	"github.com/hrms-lite/hrms-go/internal/console/notify"
)

// EmployeesPage lists employees with a local search filter and hosts the
// add form and the delete list.
type EmployeesPage struct {
	api      API
	notifier notify.Notifier
	logger   *slog.Logger

	Form *EmployeeForm
	List *EmployeeList

	employees []client.Employee
	search    string
}

func NewEmployeesPage(api API, n notify.Notifier, c Confirmer, opts ...Option) *EmployeesPage {
	o := newOptions(opts)
	p := &EmployeesPage{
		api:      api,
		notifier: n,
		logger:   o.logger,
	}
	p.Form = NewEmployeeForm(api, n, p.reload)
	p.List = NewEmployeeList(api, n, c, p.reload, opts...)
	return p
}

func (p *EmployeesPage) reload(ctx context.Context) { _ = p.Load(ctx) }

// Load fetches every employee. A failed load keeps the previous list.
func (p *EmployeesPage) Load(ctx context.Context) error {
	employees, err := p.api.ListEmployees(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to load employees", "error", err)
		p.notifier.Notify(notify.Error("Error", "Failed to load employees"))
		return err
	}
	p.employees = employees
	return nil
}

func (p *EmployeesPage) Employees() []client.Employee { return p.employees }

func (p *EmployeesPage) SetSearch(term string) { p.search = term }

func (p *EmployeesPage) Search() string { return p.search }

// Filtered applies the search term: a case-insensitive match on the name or
// a case-sensitive match on the employee ID.
func (p *EmployeesPage) Filtered() []client.Employee {
	if p.search == "" {
		return p.employees
	}
	lower := cases.Lower(language.Und)
	term := lower.String(p.search)

	var out []client.Employee
	for _, e := range p.employees {
		if strings.Contains(lower.String(e.FullName), term) || strings.Contains(e.EmployeeID, p.search) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the loaded employee with the given numeric id.
func (p *EmployeesPage) Find(id int64) (client.Employee, bool) {
	for _, e := range p.employees {
		if e.ID == id {
			return e, true
		}
	}
	return client.Employee{}, false
}

func (p *EmployeesPage) Render(w io.Writer) error {
	return p.List.Render(w, p.Filtered())
}
