package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/response"
)

// SettingsHandler serves the payroll-settings endpoints.
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// Get returns the global payroll parameters.
// GET /api/settings  (any authenticated)
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsSvc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrSettingsNotConfigured) {
			response.BadRequest(c, "Settings not configured")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, settings)
}

// Update patches the global payroll parameters.
// PATCH /api/settings  (admin)
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	settings, err := h.settingsSvc.Update(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPFPercent):
			response.BadRequest(c, "Invalid pfPercent value")
		case errors.Is(err, service.ErrSettingsNotConfigured):
			response.BadRequest(c, "Settings not configured")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, settings)
}
