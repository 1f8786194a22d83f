package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hrms-lite/hrms-go/internal/client"
	"github.com/hrms-lite/hrms-go/internal/console/notify"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(title, body string) bool
}

type ConfirmFunc func(title, body string) bool

func (f ConfirmFunc) Confirm(title, body string) bool { return f(title, body) }

// AlwaysConfirm approves without asking.
var AlwaysConfirm = ConfirmFunc(func(string, string) bool { return true })

// PromptConfirmer prints the question to out and reads a y/N answer from in.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptConfirmer{in: br, out: out}
}

func (p *PromptConfirmer) Confirm(title, body string) bool {
	fmt.Fprintf(p.out, "%s\n%s\nDelete? [y/N]: ", title, body)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// EmployeeList renders employees and deletes them after confirmation.
type EmployeeList struct {
	api       API
	notifier  notify.Notifier
	confirmer Confirmer
	refresh   func(ctx context.Context)
	logger    *slog.Logger

	deletingID int64
}

func NewEmployeeList(api API, n notify.Notifier, c Confirmer, refresh func(ctx context.Context), opts ...Option) *EmployeeList {
	o := newOptions(opts)
	return &EmployeeList{
		api:       api,
		notifier:  n,
		confirmer: c,
		refresh:   refresh,
		logger:    o.logger,
	}
}

// DeletingID is the id of the row being deleted, or 0.
func (l *EmployeeList) DeletingID() int64 { return l.deletingID }

// Remove deletes emp once the user confirms. It reports whether the
// employee was deleted.
func (l *EmployeeList) Remove(ctx context.Context, emp client.Employee) bool {
	body := fmt.Sprintf("This action cannot be undone. This will permanently remove %s.", emp.FullName)
	if !l.confirmer.Confirm("Delete employee?", body) {
		return false
	}

	l.deletingID = emp.ID
	defer func() { l.deletingID = 0 }()

	if _, err := l.api.DeleteEmployee(ctx, emp.ID); err != nil {
		l.logger.ErrorContext(ctx, "Failed to delete employee", "id", emp.ID, "error", err)
		l.notifier.Notify(notify.Error("Delete failed", "Unable to delete employee."))
		return false
	}

	l.notifier.Notify(notify.Info("Employee deleted", "The employee has been removed successfully."))
	if l.refresh != nil {
		l.refresh(ctx)
	}
	return true
}

func (l *EmployeeList) Render(w io.Writer, employees []client.Employee) error {
	return RenderEmployees(w, employees)
}
