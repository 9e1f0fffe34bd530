package handler

import (
	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Attendance *AttendanceHandler
	Leave      *LeaveHandler
	Payroll    *PayrollHandler
	Settings   *SettingsHandler
}

// NewHandler wires the handlers.
func NewHandler(cfg *config.Config, svc *Services) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(cfg, svc.Auth),
		User:       NewUserHandler(svc.User),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Leave:      NewLeaveHandler(svc.Leave, svc.Export),
		Payroll:    NewPayrollHandler(svc.Payroll, svc.Export),
		Settings:   NewSettingsHandler(svc.Settings),
	}
}

// Services lists the service interfaces the handlers depend on. Handler
// tests swap in mocks here without touching the concrete aggregate.
type Services struct {
	Auth       service.AuthService
	User       service.UserService
	Attendance service.AttendanceService
	Leave      service.LeaveService
	Payroll    service.PayrollService
	Settings   service.SettingsService
	Export     service.ExportService
}

// FromService adapts the concrete service aggregate.
func FromService(svc *service.Service) *Services {
	return &Services{
		Auth:       svc.Auth,
		User:       svc.User,
		Attendance: svc.Attendance,
		Leave:      svc.Leave,
		Payroll:    svc.Payroll,
		Settings:   svc.Settings,
		Export:     svc.Export,
	}
}
