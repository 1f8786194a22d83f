package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	GetEmployeeAttendance(w http.ResponseWriter, r *http.Request)
	GetTodayPresent(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MarkAttendance handles POST /attendance
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeAttendance handles GET /attendance/{employee_id}
func (h *attendanceHandlerImpl) GetEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := url.PathUnescape(chi.URLParam(r, "employee_id"))
	if err != nil {
		response.ValidationError(w, map[string]string{"employee_id": "employee_id is not a valid path segment"})
		return
	}

	result, err := h.attendanceService.GetEmployeeAttendance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTodayPresent handles GET /attendance/today/present
func (h *attendanceHandlerImpl) GetTodayPresent(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetTodayPresent(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
