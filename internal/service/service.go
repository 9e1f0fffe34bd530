package service

import (
	"go.uber.org/zap"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/pkg/jwt"
	"orbit-hrms/backend/pkg/mailer"
	"orbit-hrms/backend/pkg/redis"
)

// Service aggregates all business-logic modules.
type Service struct {
	Auth       AuthService
	User       UserService
	Attendance AttendanceService
	Leave      LeaveService
	Payroll    PayrollService
	Settings   SettingsService
	Export     ExportService
}

// NewService wires the service implementations.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	mail *mailer.Mailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, mail, logger),
		Attendance: NewAttendanceService(repo, logger),
		Leave:      NewLeaveService(repo, logger),
		Payroll:    NewPayrollService(repo, logger),
		Settings:   NewSettingsService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
