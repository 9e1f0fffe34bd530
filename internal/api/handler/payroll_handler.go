package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/response"
)

// PayrollHandler serves the payrun endpoints.
type PayrollHandler struct {
	payrollSvc service.PayrollService
	exportSvc  service.ExportService
}

// NewPayrollHandler creates a PayrollHandler.
func NewPayrollHandler(payrollSvc service.PayrollService, exportSvc service.ExportService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc, exportSvc: exportSvc}
}

// List returns every payrun snapshot.
// GET /api/payruns  (admin, payroll)
func (h *PayrollHandler) List(c *gin.Context) {
	payruns, err := h.payrollSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, payruns)
}

// MyPayslips returns the caller's line from each payrun.
// GET /api/payruns/me  (any authenticated)
func (h *PayrollHandler) MyPayslips(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	slips, err := h.payrollSvc.MyPayslips(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, slips)
}

// Generate computes and persists the payrun for a month.
// POST /api/payruns  (admin, payroll)
func (h *PayrollHandler) Generate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GeneratePayrunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	payrun, err := h.payrollSvc.Generate(c.Request.Context(), req.Month, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSettingsNotConfigured):
			response.BadRequest(c, "Settings not configured")
		case errors.Is(err, service.ErrPayrunExists):
			response.Conflict(c, "Payrun already exists for this month")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, payrun)
}

// Export streams one payrun as an Excel workbook.
// GET /api/payruns/:id/export  (admin, payroll)
func (h *PayrollHandler) Export(c *gin.Context) {
	buf, filename, err := h.exportSvc.PayrunSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPayrunNotFound) {
			response.NotFound(c, "Payrun not found")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
