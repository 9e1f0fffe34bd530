package repository

import (
	"context"

	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
)

// PayrunRepository is the payrun data-access interface. Payruns are
// insert-only snapshots; there is no update path.
type PayrunRepository interface {
	Create(ctx context.Context, payrun *model.Payrun) error
	GetByID(ctx context.Context, id string) (*model.Payrun, error)
	GetByMonth(ctx context.Context, month string) (*model.Payrun, error)
	List(ctx context.Context) ([]model.Payrun, error)
}

type payrunRepo struct {
	db *gorm.DB
}

// NewPayrunRepo creates the GORM-backed PayrunRepository.
func NewPayrunRepo(db *gorm.DB) PayrunRepository {
	return &payrunRepo{db: db}
}

func (r *payrunRepo) Create(ctx context.Context, payrun *model.Payrun) error {
	return r.db.WithContext(ctx).Create(payrun).Error
}

func (r *payrunRepo) GetByID(ctx context.Context, id string) (*model.Payrun, error) {
	var payrun model.Payrun
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&payrun).Error
	if err != nil {
		return nil, err
	}
	return &payrun, nil
}

func (r *payrunRepo) GetByMonth(ctx context.Context, month string) (*model.Payrun, error) {
	var payrun model.Payrun
	err := r.db.WithContext(ctx).Where("month = ?", month).First(&payrun).Error
	if err != nil {
		return nil, err
	}
	return &payrun, nil
}

func (r *payrunRepo) List(ctx context.Context) ([]model.Payrun, error) {
	var payruns []model.Payrun
	err := r.db.WithContext(ctx).Order("month DESC").Find(&payruns).Error
	if err != nil {
		return nil, err
	}
	return payruns, nil
}
