package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appHTTP "github.com/hrms-lite/hrms-go/internal/handler/http"
	"github.com/hrms-lite/hrms-go/internal/repository/memory"
	attendanceService "github.com/hrms-lite/hrms-go/internal/service/attendance"
	employeeService "github.com/hrms-lite/hrms-go/internal/service/employee"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	store := memory.NewStore()
	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
		appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(store, store.Employees())),
		appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(store.Attendance(), store.Employees(), time.Local)),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestCLI_EndToEnd(t *testing.T) {
	t.Setenv("HRMS_API_URL", newTestServer(t))
	today := time.Now().Format("2006-01-02")

	res := runCLI(t, "", "employees", "add", "-employee-id", "E1", "-name", "Asha Rao", "-email", "asha@corp", "-department", "Ops")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "✗ Validation error: Please fix the highlighted fields")
	assert.Contains(t, res.stderr, "Employee ID must be at least 3 characters")
	assert.Contains(t, res.stderr, "Enter a valid email address")

	res = runCLI(t, "", "employees", "add", "-employee-id", "E001", "-name", "Asha Rao", "-email", "asha@corp.io", "-department", "Ops")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "Employee added successfully")

	res = runCLI(t, "", "employees", "add", "-employee-id", "E001", "-name", "Asha Rao", "-email", "other@corp.io", "-department", "Ops")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "✗ Error: Employee already exists")

	res = runCLI(t, "", "employees", "-search", "asha")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Asha Rao")

	res = runCLI(t, "", "attendance", "mark", "-employee-id", "E001", "-date", today)
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "Attendance marked successfully")

	res = runCLI(t, "", "attendance")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Who is present today")
	assert.Contains(t, res.stdout, "Asha Rao")

	res = runCLI(t, "", "attendance", "history", "E001")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Attendance history by employee")
	assert.Contains(t, res.stdout, time.Now().Format("2/1/2006"))

	res = runCLI(t, "", "attendance", "history", "NOPE")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "✗ Error: Employee not found")

	res = runCLI(t, "", "dashboard")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Total employees: 1")
	assert.Contains(t, res.stdout, "Present today: 1")

	res = runCLI(t, "n\n", "employees", "delete", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "This will permanently remove Asha Rao.")

	res = runCLI(t, "", "employees", "delete", "1", "-yes")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "The employee has been removed successfully.")

	res = runCLI(t, "", "employees")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "No employees found")
}

func TestCLI_EmployeeIDWithSlash(t *testing.T) {
	t.Setenv("HRMS_API_URL", newTestServer(t))
	today := time.Now().Format("2006-01-02")

	res := runCLI(t, "", "employees", "add", "-employee-id", "HR/001", "-name", "Dev Mehta", "-email", "dev@corp.io", "-department", "HR")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)

	res = runCLI(t, "", "attendance", "mark", "-employee-id", "HR/001", "-date", today)
	require.Equal(t, 0, res.code, res.stdout+res.stderr)

	res = runCLI(t, "", "attendance", "history", "HR/001")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
	assert.Contains(t, res.stdout, "Dev Mehta")
}

func TestCLI_Shell(t *testing.T) {
	t.Setenv("HRMS_API_URL", newTestServer(t))

	script := strings.Join([]string{
		"add",
		"E007",
		"Meera Iyer",
		"meera@corp.io",
		"HR",
		"employees meera",
		"history E007",
		"mark",
		"mark E404 " + time.Now().Format("2006-01-02"),
		"clear",
		"quit",
	}, "\n") + "\n"

	res := runCLI(t, script, "shell")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Employee added successfully")
	assert.Contains(t, res.stdout, "Meera Iyer")
	assert.Contains(t, res.stdout, "No attendance found for this employee")
	assert.Contains(t, res.stdout, "Who is present today")
	assert.Contains(t, res.stdout, "E007")
	assert.Contains(t, res.stdout, "Please select an employee from the list")
}

func TestCLI_UsageErrors(t *testing.T) {
	t.Setenv("HRMS_API_URL", "http://127.0.0.1:1")

	assert.Equal(t, 2, runCLI(t, "").code)
	assert.Equal(t, 2, runCLI(t, "", "timesheet").code)
	assert.Equal(t, 2, runCLI(t, "", "employees", "delete", "abc").code)
	assert.Equal(t, 1, runCLI(t, "", "-api", "ftp://nope", "dashboard").code)
}

func TestCLI_MarkWithoutEmployeeListsChoices(t *testing.T) {
	t.Setenv("HRMS_API_URL", newTestServer(t))

	res := runCLI(t, "", "employees", "add", "-employee-id", "E010", "-name", "Kiran Das", "-email", "kiran@corp.io", "-department", "Ops")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)

	res = runCLI(t, "", "attendance", "mark", "-date", time.Now().Format("2006-01-02"))
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stdout, "Kiran Das")
	assert.Contains(t, res.stdout, "E010")
}
