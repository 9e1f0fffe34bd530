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

var (
	ErrSettingsNotConfigured = errors.New("settings not configured")
	ErrPayrunExists          = errors.New("payrun already exists for this month")
	ErrPayrunNotFound        = errors.New("payrun not found")
)

// PayrollService computes and serves monthly payroll snapshots.
type PayrollService interface {
	Generate(ctx context.Context, month, generatedBy string) (*model.Payrun, error)
	List(ctx context.Context) ([]model.Payrun, error)
	MyPayslips(ctx context.Context, userID string) ([]dto.PayslipResponse, error)
}

type payrollService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPayrollService creates a PayrollService.
func NewPayrollService(repo *repository.Repository, logger *zap.Logger) PayrollService {
	return &payrollService{repo: repo, logger: logger}
}

var hundred = decimal.NewFromInt(100)

// computeItem prices one user's month. Deductions are rounded per item,
// half away from zero; net carries no further rounding because deductions
// are already integral.
func computeItem(u *model.User, settings *model.PayrollSettings) model.PayrunItem {
	gross := int64(u.BasicSalary + u.HRA + u.OtherEarnings)

	pf := decimal.NewFromInt(int64(u.BasicSalary)).
		Mul(settings.PFPercent).
		Div(hundred)
	deductions := pf.
		Add(decimal.NewFromInt(int64(settings.ProfessionalTax))).
		Round(0).
		IntPart()

	return model.PayrunItem{
		UserID:     u.ID,
		Gross:      gross,
		Deductions: deductions,
		Net:        gross - deductions,
	}
}

// Generate computes one item per user and persists the snapshot. A month
// can be generated once; regeneration is a conflict, never a replacement.
func (s *payrollService) Generate(ctx context.Context, month, generatedBy string) (*model.Payrun, error) {
	settings, err := s.repo.Settings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotConfigured
		}
		s.logger.Error("load settings failed", zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Payrun.GetByMonth(ctx, month); err == nil {
		return nil, ErrPayrunExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup payrun failed", zap.Error(err))
		return nil, err
	}

	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	items := make(model.PayrunItems, 0, len(users))
	var total int64
	for i := range users {
		item := computeItem(&users[i], settings)
		items = append(items, item)
		total += item.Net
	}

	payrun := &model.Payrun{
		Month:        month,
		GeneratedBy:  &generatedBy,
		TotalPayroll: total,
		Items:        items,
	}

	if err := s.repo.Payrun.Create(ctx, payrun); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPayrunExists
		}
		s.logger.Error("create payrun failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("payrun generated",
		zap.String("month", month),
		zap.Int("users", len(items)),
		zap.Int64("total_payroll", total),
	)

	return payrun, nil
}

func (s *payrollService) List(ctx context.Context) ([]model.Payrun, error) {
	payruns, err := s.repo.Payrun.List(ctx)
	if err != nil {
		s.logger.Error("list payruns failed", zap.Error(err))
		return nil, err
	}
	return payruns, nil
}

// MyPayslips filters every payrun down to the calling user's item,
// dropping months in which the user had no line.
func (s *payrollService) MyPayslips(ctx context.Context, userID string) ([]dto.PayslipResponse, error) {
	payruns, err := s.repo.Payrun.List(ctx)
	if err != nil {
		s.logger.Error("list payruns failed", zap.Error(err))
		return nil, err
	}

	slips := make([]dto.PayslipResponse, 0, len(payruns))
	for _, p := range payruns {
		for _, item := range p.Items {
			if item.UserID == userID {
				slips = append(slips, dto.PayslipResponse{
					ID:    p.ID,
					Month: p.Month,
					Item:  item,
				})
				break
			}
		}
	}
	return slips, nil
}
