package repository

import (
	"context"

	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
)

// AttendanceRepository is the attendance data-access interface.
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.Attendance) error
	GetByUserAndDate(ctx context.Context, userID, date string) (*model.Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]model.Attendance, error)
	List(ctx context.Context) ([]model.Attendance, error)
	Update(ctx context.Context, record *model.Attendance) error
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, record *model.Attendance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepo) GetByUserAndDate(ctx context.Context, userID, date string) (*model.Attendance, error) {
	var record model.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepo) ListByUser(ctx context.Context, userID string) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepo) List(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).Order("date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepo) Update(ctx context.Context, record *model.Attendance) error {
	return r.db.WithContext(ctx).Save(record).Error
}
