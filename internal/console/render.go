package console

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hrms-lite/hrms-go/internal/client"
)

// displayDateLayout matches the en-IN short date, which does not zero-pad.
const displayDateLayout = "2/1/2006"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func RenderEmployees(w io.Writer, employees []client.Employee) error {
	if len(employees) == 0 {
		_, err := fmt.Fprintln(w, "No employees found")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEmployee ID\tName\tEmail\tDepartment")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.EmployeeID, e.FullName, e.Email, e.Department)
	}
	return tw.Flush()
}

// RenderEmployeeChoices prints the mark-attendance picker.
func RenderEmployeeChoices(w io.Writer, employees []client.Employee) error {
	if len(employees) == 0 {
		_, err := fmt.Fprintln(w, "No employees to select")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Name\tEmployee ID")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\n", e.FullName, e.EmployeeID)
	}
	return tw.Flush()
}

func RenderAttendance(w io.Writer, heading string, records []client.AttendanceRecord, loading bool, today string) error {
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}
	switch {
	case loading:
		_, err := fmt.Fprintln(w, "Loading…")
		return err
	case len(records) == 0:
		_, err := fmt.Fprintln(w, "No records found")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "Employee\tDate\tStatus")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", RecordName(r), RecordDate(r, today), RecordStatus(r))
	}
	return tw.Flush()
}

// RecordName prefers full_name, then employee_name.
func RecordName(r client.AttendanceRecord) string {
	switch {
	case r.FullName != "":
		return r.FullName
	case r.EmployeeName != "":
		return r.EmployeeName
	}
	return "—"
}

// RecordDate renders the date as D/M/YYYY. Records without a date belong
// to today.
func RecordDate(r client.AttendanceRecord, today string) string {
	if r.Date == "" {
		return today
	}
	d, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return r.Date
	}
	return d.Format(displayDateLayout)
}

func RecordStatus(r client.AttendanceRecord) string {
	if r.Status == "" {
		return StatusPresent
	}
	return r.Status
}

func RenderCards(w io.Writer, cards []Card) error {
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n  %s\n", c.Title, c.Description)
		if c.Stat != "" {
			fmt.Fprintf(w, "  %s\n", c.Stat)
		}
	}
	return nil
}
