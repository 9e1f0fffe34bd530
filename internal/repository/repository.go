package repository

import "gorm.io/gorm"

// Repository aggregates all entity repositories.
type Repository struct {
	User       UserRepository
	Attendance AttendanceRepository
	Leave      LeaveRepository
	Payrun     PayrunRepository
	Settings   SettingsRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Attendance: NewAttendanceRepo(db),
		Leave:      NewLeaveRepo(db),
		Payrun:     NewPayrunRepo(db),
		Settings:   NewSettingsRepo(db),
	}
}
