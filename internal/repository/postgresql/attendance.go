package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, employeeRef int64, date time.Time, status attendance.Status) (bool, error) {
	q := GetQuerier(ctx, a.db)

	// xmax is zero only for a freshly inserted row version.
	query := `
		INSERT INTO attendances (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	if err := q.QueryRow(ctx, query, employeeRef, date, string(status)).Scan(&inserted); err != nil {
		return false, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return inserted, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeRef int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, employeeRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var att attendance.Attendance
		var status string
		if err := rows.Scan(&att.ID, &att.EmployeeRef, &att.Date, &status, &att.CreatedAt, &att.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.Status = attendance.Status(status)
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListPresentOn implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListPresentOn(ctx context.Context, date time.Time) ([]attendance.PresentEmployee, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT DISTINCT e.employee_id, e.full_name, e.department
		FROM employees e
		JOIN attendances a ON a.employee_id = e.id
		WHERE a.date = $1 AND a.status = $2
		ORDER BY e.full_name, e.employee_id
	`

	rows, err := q.Query(ctx, query, date, string(attendance.StatusPresent))
	if err != nil {
		return nil, fmt.Errorf("failed to list present employees: %w", err)
	}
	defer rows.Close()

	present := []attendance.PresentEmployee{}
	for rows.Next() {
		var p attendance.PresentEmployee
		if err := rows.Scan(&p.EmployeeID, &p.FullName, &p.Department); err != nil {
			return nil, err
		}
		present = append(present, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return present, nil
}
