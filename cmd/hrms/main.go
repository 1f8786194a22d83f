package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hrms-lite/hrms-go/internal/client"
	"github.com/hrms-lite/hrms-go/internal/config"
	"github.com/hrms-lite/hrms-go/internal/console"
	"github.com/hrms-lite/hrms-go/internal/console/notify"
)

const usage = `Usage: hrms [-api URL] <command> [args]

Commands:
  employees [list] [-search TERM]
  employees add -employee-id ID -name NAME -email EMAIL -department DEPT
  employees delete <id> [-yes]
  attendance [today]
  attendance history <employee_id>
  attendance mark -employee-id ID -date YYYY-MM-DD [-status Present|Absent]
  dashboard
  shell
`

type app struct {
	api      console.API
	notifier notify.Notifier
	logger   *slog.Logger
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hrms", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	apiURL := fs.String("api", "", "API base URL (overrides HRMS_API_URL)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(stderr, "Error loading config:", err)
		return 1
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(stderr, "Error loading config:", err)
			return 1
		}
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	a := &app{
		api:      client.New(cfg.APIURL, client.WithTimeout(cfg.Timeout)),
		notifier: notify.NewWriterNotifier(stdout),
		logger:   logger,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	switch rest[0] {
	case "employees":
		return a.employees(ctx, rest[1:])
	case "attendance":
		return a.attendance(ctx, rest[1:])
	case "dashboard":
		return a.dashboard(ctx)
	case "shell":
		return a.shell(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		fs.Usage()
		return 2
	}
}

func (a *app) opts() []console.Option {
	return []console.Option{console.WithLogger(a.logger)}
}

func (a *app) employees(ctx context.Context, args []string) int {
	sub := "list"
	if len(args) > 0 && (args[0] == "list" || args[0] == "add" || args[0] == "delete") {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "add":
		return a.addEmployee(ctx, args)
	case "delete":
		return a.deleteEmployee(ctx, args)
	}

	fs := flag.NewFlagSet("employees", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	search := fs.String("search", "", "filter by name or employee ID")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	page := console.NewEmployeesPage(a.api, a.notifier, console.AlwaysConfirm, a.opts()...)
	if err := page.Load(ctx); err != nil {
		return 1
	}
	page.SetSearch(*search)
	return a.render(page)
}

func (a *app) addEmployee(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("employees add", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	employeeID := fs.String("employee-id", "", "employee ID")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	department := fs.String("department", "", "department")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	form := console.NewEmployeeForm(a.api, a.notifier, nil)
	form.Set(console.FieldEmployeeID, *employeeID)
	form.Set(console.FieldFullName, *name)
	form.Set(console.FieldEmail, *email)
	form.Set(console.FieldDepartment, *department)

	if err := form.Submit(ctx); err != nil {
		a.printFieldErrors(form)
		return 1
	}
	return 0
}

func (a *app) printFieldErrors(form *console.EmployeeForm) {
	for _, f := range []console.Field{console.FieldEmployeeID, console.FieldFullName, console.FieldEmail, console.FieldDepartment} {
		if msg := form.FieldError(f); msg != "" {
			fmt.Fprintf(a.stderr, "  %s: %s\n", f, msg)
		}
	}
}

func (a *app) deleteEmployee(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("employees delete", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "usage: hrms employees delete <id> [-yes]")
		return 2
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(a.stderr, "invalid id %q\n", fs.Arg(0))
		return 2
	}

	var confirmer console.Confirmer = console.NewPromptConfirmer(a.stdin, a.stdout)
	if *yes {
		confirmer = console.AlwaysConfirm
	}

	page := console.NewEmployeesPage(a.api, a.notifier, confirmer, a.opts()...)
	if err := page.Load(ctx); err != nil {
		return 1
	}
	emp, ok := page.Find(id)
	if !ok {
		a.notifier.Notify(notify.Error("Error", "Employee not found"))
		return 1
	}
	if !page.List.Remove(ctx, emp) {
		return 1
	}
	return 0
}

func (a *app) attendance(ctx context.Context, args []string) int {
	sub := "today"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	page := console.NewAttendancePage(a.api, a.notifier, a.opts()...)

	switch sub {
	case "today":
		if err := page.LoadTodayPresent(ctx); err != nil {
			return 1
		}
	case "history":
		if len(args) != 1 {
			fmt.Fprintln(a.stderr, "usage: hrms attendance history <employee_id>")
			return 2
		}
		page.SetSearchID(ctx, args[0])
		if err := page.Search(ctx); err != nil {
			return 1
		}
	case "mark":
		fs := flag.NewFlagSet("attendance mark", flag.ContinueOnError)
		fs.SetOutput(a.stderr)
		employeeID := fs.String("employee-id", "", "employee ID")
		date := fs.String("date", "", "date as YYYY-MM-DD")
		status := fs.String("status", console.StatusPresent, "Present or Absent")
		if err := fs.Parse(args); err != nil {
			return 2
		}
		page.LoadEmployees(ctx)
		if *employeeID == "" {
			fmt.Fprintln(a.stdout, "Select an employee with -employee-id:")
			a.render(choices{page})
			return 2
		}
		page.Form = console.AttendanceForm{EmployeeID: *employeeID, Date: *date, Status: *status}
		if err := page.Submit(ctx); err != nil {
			return 1
		}
		return 0
	default:
		fmt.Fprintf(a.stderr, "unknown attendance command %q\n", sub)
		return 2
	}
	return a.render(page)
}

func (a *app) dashboard(ctx context.Context) int {
	page := console.NewDashboardPage(a.api, a.notifier, a.opts()...)
	page.Load(ctx)
	return a.render(page)
}

type renderer interface {
	Render(w io.Writer) error
}

// choices renders the attendance page's employee picker.
type choices struct{ page *console.AttendancePage }

func (c choices) Render(w io.Writer) error { return c.page.RenderChoices(w) }

func (a *app) render(r renderer) int {
	if err := r.Render(a.stdout); err != nil {
		if errors.Is(err, io.ErrClosedPipe) {
			return 0
		}
		a.logger.Error("Failed to render", "error", err)
		return 1
	}
	return 0
}
