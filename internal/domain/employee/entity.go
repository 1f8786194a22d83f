package employee

import "time"

type Employee struct {
	ID         int64
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}
