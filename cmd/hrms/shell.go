package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hrms-lite/hrms-go/internal/console"
)

const shellHelp = `Commands:
  employees [TERM]          list employees, optionally filtered
  add                       add an employee (prompts for each field)
  delete <id>               delete an employee by numeric id
  today                     who is present today
  history [employee_id]     attendance history, repeats the last search without an id
  clear                     clear the history search and show today
  mark                      list the employees you can mark
  mark <employee_id> <date> [Present|Absent]
  dashboard                 employee and attendance counts
  help
  quit
`

// shell keeps one instance of each page so search and mode survive
// between commands.
func (a *app) shell(ctx context.Context) int {
	in := bufio.NewReader(a.stdin)
	confirmer := console.NewPromptConfirmer(in, a.stdout)

	employees := console.NewEmployeesPage(a.api, a.notifier, confirmer, a.opts()...)
	attendance := console.NewAttendancePage(a.api, a.notifier, a.opts()...)
	dashboard := console.NewDashboardPage(a.api, a.notifier, a.opts()...)

	_ = employees.Load(ctx)
	attendance.Open(ctx)

	fmt.Fprint(a.stdout, shellHelp)
	for {
		if ctx.Err() != nil {
			return 0
		}
		fmt.Fprint(a.stdout, "hrms> ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(a.stdout)
			return 0
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return 0
		case "help":
			fmt.Fprint(a.stdout, shellHelp)
		case "employees":
			employees.SetSearch(strings.Join(args, " "))
			a.render(employees)
		case "add":
			a.shellAdd(ctx, in, employees.Form)
			attendance.LoadEmployees(ctx)
			a.render(employees)
		case "delete":
			if len(args) != 1 {
				fmt.Fprintln(a.stdout, "usage: delete <id>")
				continue
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Fprintf(a.stdout, "invalid id %q\n", args[0])
				continue
			}
			emp, ok := employees.Find(id)
			if !ok {
				fmt.Fprintln(a.stdout, "No employee with that id in the current list")
				continue
			}
			if employees.List.Remove(ctx, emp) {
				attendance.LoadEmployees(ctx)
			}
			a.render(employees)
		case "today":
			_ = attendance.LoadTodayPresent(ctx)
			a.render(attendance)
		case "history":
			if len(args) > 0 {
				attendance.SetSearchID(ctx, strings.Join(args, " "))
			}
			_ = attendance.Search(ctx)
			a.render(attendance)
		case "clear":
			attendance.SetSearchID(ctx, "")
			a.render(attendance)
		case "mark":
			if len(args) == 0 {
				a.render(choices{attendance})
				continue
			}
			form := console.AttendanceForm{EmployeeID: args[0], Status: console.StatusPresent}
			if len(args) > 1 {
				form.Date = args[1]
			}
			if len(args) > 2 {
				form.Status = args[2]
			}
			attendance.Form = form
			_ = attendance.Submit(ctx)
			a.render(attendance)
		case "dashboard":
			dashboard.Load(ctx)
			a.render(dashboard)
		default:
			fmt.Fprintf(a.stdout, "unknown command %q, type help\n", cmd)
		}
	}
}

func (a *app) shellAdd(ctx context.Context, in *bufio.Reader, form *console.EmployeeForm) {
	prompts := []struct {
		field console.Field
		label string
	}{
		{console.FieldEmployeeID, "Employee ID"},
		{console.FieldFullName, "Full Name"},
		{console.FieldEmail, "Email"},
		{console.FieldDepartment, "Department"},
	}
	for _, p := range prompts {
		current := strings.TrimSpace(fieldValue(form, p.field))
		if current != "" && form.FieldError(p.field) == "" {
			fmt.Fprintf(a.stdout, "%s [%s]: ", p.label, current)
		} else {
			fmt.Fprintf(a.stdout, "%s: ", p.label)
		}
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return
		}
		if v := strings.TrimRight(line, "\r\n"); v != "" || current == "" {
			form.Set(p.field, v)
		}
	}
	if err := form.Submit(ctx); err != nil {
		a.printFieldErrors(form)
	}
}

func fieldValue(form *console.EmployeeForm, field console.Field) string {
	v := form.Values()
	switch field {
	case console.FieldEmployeeID:
		return v.EmployeeID
	case console.FieldFullName:
		return v.FullName
	case console.FieldEmail:
		return v.Email
	case console.FieldDepartment:
		return v.Department
	}
	return ""
}
