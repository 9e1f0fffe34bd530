package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
)

var (
	ErrLeaveNotFound      = errors.New("leave not found")
	ErrInvalidLeaveStatus = errors.New("invalid status")
	ErrLeaveFinalized     = errors.New("leave already finalized")
)

// LeaveService is the leave-request business interface. Requests are born
// Pending; Approved, Rejected, and Cancelled are terminal. Approval never
// adjusts leave balances; allocation is a separate HR operation.
type LeaveService interface {
	Apply(ctx context.Context, userID string, req *dto.ApplyLeaveRequest) (*model.Leave, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Leave, error)
	ListFor(ctx context.Context, userID string, role model.Role) ([]model.Leave, error)
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService creates a LeaveService.
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

// Apply files a leave request for the calling user. The status is forced to
// Pending regardless of anything the client sent. Overlapping ranges and
// balance overruns are accepted; approval is where judgment happens.
func (s *leaveService) Apply(ctx context.Context, userID string, req *dto.ApplyLeaveRequest) (*model.Leave, error) {
	leave := &model.Leave{
		UserID:    userID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    model.LeavePending,
	}

	if err := s.repo.Leave.Create(ctx, leave); err != nil {
		s.logger.Error("create leave failed", zap.Error(err))
		return nil, err
	}

	return leave, nil
}

// UpdateStatus transitions a Pending leave to a terminal status.
func (s *leaveService) UpdateStatus(ctx context.Context, id, status string) (*model.Leave, error) {
	if !model.TerminalLeaveStatus(status) {
		return nil, ErrInvalidLeaveStatus
	}

	leave, err := s.repo.Leave.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("lookup leave failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if leave.Status != model.LeavePending {
		return nil, ErrLeaveFinalized
	}

	leave.Status = status
	if err := s.repo.Leave.Update(ctx, leave); err != nil {
		s.logger.Error("update leave failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return leave, nil
}

// ListFor returns the caller's own requests for employees and every
// request for admin/hr/payroll.
func (s *leaveService) ListFor(ctx context.Context, userID string, role model.Role) ([]model.Leave, error) {
	var (
		leaves []model.Leave
		err    error
	)
	if role.SeesAllRecords() {
		leaves, err = s.repo.Leave.List(ctx)
	} else {
		leaves, err = s.repo.Leave.ListByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, err
	}
	return leaves, nil
}
