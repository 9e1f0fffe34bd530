package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
)

var ErrInvalidPFPercent = errors.New("invalid pf percent")

// SettingsService serves the global payroll parameters. The row is seeded
// by migration; reading never creates it.
type SettingsService interface {
	Get(ctx context.Context) (*model.PayrollSettings, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*model.PayrollSettings, error)
}

type settingsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(repo *repository.Repository, logger *zap.Logger) SettingsService {
	return &settingsService{repo: repo, logger: logger}
}

func (s *settingsService) Get(ctx context.Context) (*model.PayrollSettings, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotConfigured
		}
		s.logger.Error("load settings failed", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*model.PayrollSettings, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotConfigured
		}
		s.logger.Error("load settings failed", zap.Error(err))
		return nil, err
	}

	if req.PFPercent != nil {
		pct, err := decimal.NewFromString(*req.PFPercent)
		if err != nil || pct.IsNegative() || pct.GreaterThan(hundred) {
			return nil, ErrInvalidPFPercent
		}
		settings.PFPercent = pct
	}
	if req.ProfessionalTax != nil {
		settings.ProfessionalTax = *req.ProfessionalTax
	}

	if err := s.repo.Settings.Update(ctx, settings); err != nil {
		s.logger.Error("update settings failed", zap.Error(err))
		return nil, err
	}

	return settings, nil
}
