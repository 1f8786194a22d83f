// Package memory is a process-local implementation of the repositories.
// It backs STORAGE_DRIVER=memory and the service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/domain/employee"
)

type attendanceKey struct {
	employeeRef int64
	date        string
}

// Store holds employees and attendance behind one mutex.
type Store struct {
	mu         sync.Mutex
	nextEmpID  int64
	nextAttID  int64
	employees  map[int64]employee.Employee
	attendance map[attendanceKey]attendance.Attendance
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		nextEmpID:  1,
		nextAttID:  1,
		employees:  make(map[int64]employee.Employee),
		attendance: make(map[attendanceKey]attendance.Attendance),
		now:        time.Now,
	}
}

// WithinTx runs fn directly. Each repository call is already atomic.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) Employees() employee.EmployeeRepository {
	return &employeeRepository{s: s}
}

func (s *Store) Attendance() attendance.AttendanceRepository {
	return &attendanceRepository{s: s}
}

type employeeRepository struct {
	s *Store
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.employees {
		if e.EmployeeID == newEmployee.EmployeeID || e.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
	}

	newEmployee.ID = r.s.nextEmpID
	newEmployee.CreatedAt = r.s.now()
	r.s.nextEmpID++
	r.s.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	list := make([]employee.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.employees {
		if e.EmployeeID == employeeID || e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.employees, id)
	for k := range r.s.attendance {
		if k.employeeRef == id {
			delete(r.s.attendance, k)
		}
	}
	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.employees)), nil
}

type attendanceRepository struct {
	s *Store
}

func (r *attendanceRepository) Upsert(ctx context.Context, employeeRef int64, date time.Time, status attendance.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := attendanceKey{employeeRef: employeeRef, date: date.Format("2006-01-02")}
	now := r.s.now()
	if existing, ok := r.s.attendance[key]; ok {
		existing.Status = status
		existing.UpdatedAt = now
		r.s.attendance[key] = existing
		return false, nil
	}

	r.s.attendance[key] = attendance.Attendance{
		ID:          r.s.nextAttID,
		EmployeeRef: employeeRef,
		Date:        date,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.s.nextAttID++
	return true, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeRef int64) ([]attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records := []attendance.Attendance{}
	for k, a := range r.s.attendance {
		if k.employeeRef == employeeRef {
			records = append(records, a)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

func (r *attendanceRepository) ListPresentOn(ctx context.Context, date time.Time) ([]attendance.PresentEmployee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	day := date.Format("2006-01-02")
	present := []attendance.PresentEmployee{}
	for k, a := range r.s.attendance {
		if k.date != day || a.Status != attendance.StatusPresent {
			continue
		}
		e, ok := r.s.employees[k.employeeRef]
		if !ok {
			continue
		}
		present = append(present, attendance.PresentEmployee{
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			Department: e.Department,
		})
	}
	sort.Slice(present, func(i, j int) bool {
		if present[i].FullName != present[j].FullName {
			return present[i].FullName < present[j].FullName
		}
		return present[i].EmployeeID < present[j].EmployeeID
	})
	return present, nil
}
