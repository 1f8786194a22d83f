package client

type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type EmployeeInput struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type EmployeeCounts struct {
	TotalUsers int64 `json:"total_users"`
}

// AttendanceRecord covers both the history rows and the present-today rows,
// so most fields are optional.
type AttendanceRecord struct {
	ID           int64  `json:"id,omitempty"`
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	Department   string `json:"department,omitempty"`
	Date         string `json:"date,omitempty"`
	Status       string `json:"status,omitempty"`
}

type AttendanceInput struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type Message struct {
	Message string `json:"message"`
}
