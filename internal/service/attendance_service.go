package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("not clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out")
)

// AttendanceService is the clock-in/out business interface. Per user and
// day the record moves NoRecord → ClockedIn → ClockedOut and is then
// terminal.
type AttendanceService interface {
	ClockIn(ctx context.Context, userID string) (*model.Attendance, error)
	ClockOut(ctx context.Context, userID string) (*model.Attendance, error)
	ListFor(ctx context.Context, userID string, role model.Role) ([]model.Attendance, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // injectable for tests
}

// NewAttendanceService creates an AttendanceService on the wall clock.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger, now: time.Now}
}

// ClockIn opens today's record. The existence check is the fast path; the
// unique (user, date) constraint catches the concurrent double clock-in and
// is reported as the same conflict.
func (s *attendanceService) ClockIn(ctx context.Context, userID string) (*model.Attendance, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	if _, err := s.repo.Attendance.GetByUserAndDate(ctx, userID, today); err == nil {
		return nil, ErrAlreadyClockedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup attendance failed", zap.Error(err))
		return nil, err
	}

	record := &model.Attendance{
		UserID: userID,
		Date:   today,
		InTime: now.Format("15:04"),
		Status: model.AttendancePresent,
	}

	if err := s.repo.Attendance.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyClockedIn
		}
		s.logger.Error("create attendance failed", zap.Error(err))
		return nil, err
	}

	return record, nil
}

// ClockOut closes today's record, once.
func (s *attendanceService) ClockOut(ctx context.Context, userID string) (*model.Attendance, error) {
	now := s.now()
	today := now.Format("2006-01-02")

	record, err := s.repo.Attendance.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotClockedIn
		}
		s.logger.Error("lookup attendance failed", zap.Error(err))
		return nil, err
	}

	if record.ClockedOut() {
		return nil, ErrAlreadyClockedOut
	}

	out := now.Format("15:04")
	record.OutTime = &out

	if err := s.repo.Attendance.Update(ctx, record); err != nil {
		s.logger.Error("update attendance failed", zap.Error(err))
		return nil, err
	}

	return record, nil
}

// ListFor returns the caller's own records for employees and every record
// for admin/hr/payroll.
func (s *attendanceService) ListFor(ctx context.Context, userID string, role model.Role) ([]model.Attendance, error) {
	var (
		records []model.Attendance
		err     error
	)
	if role.SeesAllRecords() {
		records, err = s.repo.Attendance.List(ctx)
	} else {
		records, err = s.repo.Attendance.ListByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}
	return records, nil
}
