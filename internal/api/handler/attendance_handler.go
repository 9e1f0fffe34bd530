package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/response"
)

// AttendanceHandler serves the clock-in/out endpoints.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// List returns attendance records: the caller's own for employees, all
// records otherwise.
// GET /api/attendance  (any authenticated)
func (h *AttendanceHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	records, err := h.attendanceSvc.ListFor(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, records)
}

// ClockIn opens today's attendance record.
// POST /api/attendance/clock-in  (any authenticated)
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.attendanceSvc.ClockIn(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyClockedIn) {
			response.BadRequest(c, "Already clocked in today")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, record)
}

// ClockOut closes today's attendance record.
// POST /api/attendance/clock-out  (any authenticated)
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	record, err := h.attendanceSvc.ClockOut(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotClockedIn):
			response.BadRequest(c, "Not clocked in today")
		case errors.Is(err, service.ErrAlreadyClockedOut):
			response.BadRequest(c, "Already clocked out")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, record)
}
