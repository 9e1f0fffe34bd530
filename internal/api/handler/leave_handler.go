package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/response"
)

// LeaveHandler serves the leave-request endpoints.
type LeaveHandler struct {
	leaveSvc  service.LeaveService
	exportSvc service.ExportService
}

// NewLeaveHandler creates a LeaveHandler.
func NewLeaveHandler(leaveSvc service.LeaveService, exportSvc service.ExportService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc, exportSvc: exportSvc}
}

// List returns leave requests: the caller's own for employees, all
// requests otherwise.
// GET /api/leaves  (any authenticated)
func (h *LeaveHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	leaves, err := h.leaveSvc.ListFor(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, leaves)
}

// Apply files a leave request for the caller; status starts Pending.
// POST /api/leaves  (any authenticated)
func (h *LeaveHandler) Apply(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	leave, err := h.leaveSvc.Apply(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, leave)
}

// UpdateStatus transitions a Pending leave.
// PATCH /api/leaves/:id  (admin, payroll)
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	leave, err := h.leaveSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLeaveStatus):
			response.BadRequest(c, "Invalid status")
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(c, "Leave not found")
		case errors.Is(err, service.ErrLeaveFinalized):
			response.Conflict(c, "Leave already finalized")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, leave)
}

// Calendar streams approved leaves as an iCalendar feed.
// GET /api/leaves/calendar.ics  (any authenticated)
func (h *LeaveHandler) Calendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	feed, err := h.exportSvc.LeaveCalendar(c.Request.Context(), userID, role)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leaves.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
