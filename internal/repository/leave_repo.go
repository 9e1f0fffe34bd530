package repository

import (
	"context"

	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
)

// LeaveRepository is the leave data-access interface.
type LeaveRepository interface {
	Create(ctx context.Context, leave *model.Leave) error
	GetByID(ctx context.Context, id string) (*model.Leave, error)
	ListByUser(ctx context.Context, userID string) ([]model.Leave, error)
	List(ctx context.Context) ([]model.Leave, error)
	Update(ctx context.Context, leave *model.Leave) error
}

type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo creates the GORM-backed LeaveRepository.
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepo) GetByID(ctx context.Context, id string) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&leave).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepo) ListByUser(ctx context.Context, userID string) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepo) List(ctx context.Context) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepo) Update(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}
