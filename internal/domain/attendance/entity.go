package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

type Attendance struct {
	ID int64
	// EmployeeRef is the employees.id foreign key, not the human-facing employee_id.
	EmployeeRef int64
	Date        time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PresentEmployee is one row of the present-today roster.
type PresentEmployee struct {
	EmployeeID string
	FullName   string
	Department string
}
