package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/response"
)

// UserHandler serves the employee-directory endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List returns every user with full fields minus password.
// GET /api/users  (admin, hr)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// Directory returns the directory shaped for the caller's role.
// GET /api/users/directory  (any authenticated)
func (h *UserHandler) Directory(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	entries, err := h.userSvc.Directory(c.Request.Context(), role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}

// Me returns the caller's own record.
// GET /api/users/me  (any authenticated)
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// Create registers an employee.
// POST /api/users  (admin, hr)
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			response.Conflict(c, "Login ID or email already exists")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// Update patches an employee record.
// PATCH /api/users/:id  (admin, hr)
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, service.ErrDuplicateUser):
			response.Conflict(c, "Login ID or email already exists")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, user)
}

// Delete removes an employee and their attendance/leave records.
// DELETE /api/users/:id  (admin)
func (h *UserHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	err := h.userSvc.Delete(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, service.ErrUserSelfDelete):
			response.BadRequest(c, "Cannot delete your own account")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Success(c)
}

// UpdateLeaveBalance sets a user's allocated leave days.
// PATCH /api/users/:id/leaves  (admin, hr)
func (h *UserHandler) UpdateLeaveBalance(c *gin.Context) {
	var req dto.LeaveBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	user, err := h.userSvc.UpdateLeaveBalance(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}
