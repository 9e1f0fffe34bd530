package repository

import (
	"context"

	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
)

// SettingsRepository is the payroll-settings data-access interface.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.PayrollSettings, error)
	Update(ctx context.Context, settings *model.PayrollSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

// NewSettingsRepo creates the GORM-backed SettingsRepository.
func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.PayrollSettings, error) {
	var settings model.PayrollSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Update(ctx context.Context, settings *model.PayrollSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
