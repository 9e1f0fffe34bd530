package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/pkg/mailer"
)

var (
	ErrUserSelfDelete = errors.New("cannot delete your own account")
	ErrDuplicateUser  = errors.New("login id or email already exists")
)

// UserService is the employee-directory business interface.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Directory(ctx context.Context, callerRole model.Role) (interface{}, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id, callerID string) error
	UpdateLeaveBalance(ctx context.Context, id string, req *dto.LeaveBalanceRequest) (*dto.UserResponse, error)
	Bootstrap(ctx context.Context, cfg *config.BootstrapConfig) error
}

type userService struct {
	repo   *repository.Repository
	mail   *mailer.Mailer
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(repo *repository.Repository, mail *mailer.Mailer, logger *zap.Logger) UserService {
	return &userService{repo: repo, mail: mail, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create registers an employee. The login id is derived from the name and
// joining year; the per-year sequence can race under concurrent creation,
// in which case the unique constraint fires and the caller sees a conflict
// rather than a duplicate id.
func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	loginID, err := s.deriveLoginID(ctx, req.Name, req.YearOfJoining)
	if err != nil {
		return nil, err
	}

	password := req.Password
	generated := false
	if password == "" {
		password, err = randomPassword(12)
		if err != nil {
			s.logger.Error("generate temp password failed", zap.Error(err))
			return nil, err
		}
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	annual, sick := 12, 6
	if req.AnnualLeave != nil {
		annual = *req.AnnualLeave
	}
	if req.SickLeave != nil {
		sick = *req.SickLeave
	}

	user := &model.User{
		LoginID:       loginID,
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Role:          req.Role,
		Department:    req.Department,
		Mobile:        req.Mobile,
		Company:       req.Company,
		Manager:       req.Manager,
		Location:      req.Location,
		YearOfJoining: req.YearOfJoining,
		BasicSalary:   req.BasicSalary,
		HRA:           req.HRA,
		OtherEarnings: req.OtherEarnings,
		AnnualLeave:   annual,
		SickLeave:     sick,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("id", user.ID),
		zap.String("login_id", user.LoginID),
		zap.String("role", string(user.Role)),
	)

	// Credentials go out by mail when the password was generated here.
	// Delivery failure is logged, never surfaced: the record is created.
	if generated {
		if err := s.mail.SendWelcome(user.Email, user.Name, user.LoginID, password); err != nil {
			s.logger.Warn("welcome mail failed", zap.String("email", user.Email), zap.Error(err))
		}
	}

	return dto.NewUserResponse(user), nil
}

// ────────────────────── Bootstrap ──────────────────────

// Bootstrap seeds the first admin account so a fresh install has a way to
// log in. It is a no-op once any user exists, so restarts never re-seed.
func (s *userService) Bootstrap(ctx context.Context, cfg *config.BootstrapConfig) error {
	existing, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("bootstrap user check failed", zap.Error(err))
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	password := cfg.AdminPassword
	generated := false
	if password == "" {
		password, err = randomPassword(12)
		if err != nil {
			return err
		}
		generated = true
	}

	resp, err := s.Create(ctx, &dto.CreateUserRequest{
		Name:          cfg.AdminName,
		Email:         cfg.AdminEmail,
		Password:      password,
		Role:          model.RoleAdmin,
		Department:    "Management",
		YearOfJoining: time.Now().Year(),
	})
	if err != nil {
		s.logger.Error("bootstrap admin creation failed", zap.Error(err))
		return err
	}

	if generated {
		// The operator reads the one-time credentials from the startup
		// log and is expected to change them after first login.
		s.logger.Warn("bootstrap admin created with a generated password",
			zap.String("login_id", resp.LoginID),
			zap.String("email", resp.Email),
			zap.String("password", password),
		)
	} else {
		s.logger.Info("bootstrap admin created",
			zap.String("login_id", resp.LoginID),
			zap.String("email", resp.Email),
		)
	}

	return nil
}

// deriveLoginID builds "OI" + 2-letter first/last name prefixes + joining
// year + 4-digit per-year sequence number.
func (s *userService) deriveLoginID(ctx context.Context, name string, year int) (string, error) {
	count, err := s.repo.User.CountByJoiningYear(ctx, year)
	if err != nil {
		s.logger.Error("count users by joining year failed", zap.Error(err))
		return "", err
	}
	return fmt.Sprintf("OI%s%d%04d", namePrefixes(name), year, count+1), nil
}

// namePrefixes returns the uppercased 2-letter prefixes of the first and
// last word of a name, concatenated. A single-word name contributes the
// same prefix twice.
func namePrefixes(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return ""
	}
	first := []rune(parts[0])
	last := []rune(parts[len(parts)-1])
	return runePrefix(first, 2) + runePrefix(last, 2)
}

func runePrefix(r []rune, n int) string {
	if len(r) > n {
		r = r[:n]
	}
	return strings.ToUpper(string(r))
}

// randomPassword draws n characters from the alphanumeric set.
func randomPassword(n int) (string, error) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		b[i] = chars[idx.Int64()]
	}
	return string(b), nil
}

// ────────────────────── Reads ──────────────────────

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserResponse(&users[i]))
	}
	return result, nil
}

// Directory returns the employee directory shaped for the caller's role:
// employee callers get entries with compensation and leave balances
// redacted, every other role gets full records minus passwords.
func (s *userService) Directory(ctx context.Context, callerRole model.Role) (interface{}, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	if !callerRole.SeesAllRecords() {
		entries := make([]dto.DirectoryEntry, 0, len(users))
		for i := range users {
			entries = append(entries, *dto.NewDirectoryEntry(&users[i]))
		}
		return entries, nil
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserResponse(&users[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("hash password failed", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Mobile != nil {
		user.Mobile = req.Mobile
	}
	if req.Company != nil {
		user.Company = req.Company
	}
	if req.Manager != nil {
		user.Manager = req.Manager
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.YearOfJoining != nil {
		user.YearOfJoining = *req.YearOfJoining
	}
	if req.BasicSalary != nil {
		user.BasicSalary = *req.BasicSalary
	}
	if req.HRA != nil {
		user.HRA = *req.HRA
	}
	if req.OtherEarnings != nil {
		user.OtherEarnings = *req.OtherEarnings
	}
	if req.AnnualLeave != nil {
		user.AnnualLeave = *req.AnnualLeave
	}
	if req.SickLeave != nil {
		user.SickLeave = *req.SickLeave
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return dto.NewUserResponse(user), nil
}

// ────────────────────── Delete ──────────────────────

// Delete removes a user and, through the schema's cascade rule, their
// attendance and leave records. The acting admin cannot delete themself.
func (s *userService) Delete(ctx context.Context, id, callerID string) error {
	if id == callerID {
		return ErrUserSelfDelete
	}

	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("user deleted", zap.String("id", id))
	return nil
}

// ────────────────────── UpdateLeaveBalance ──────────────────────

// UpdateLeaveBalance is the HR allocation path. It is deliberately
// independent of leave approval: approving a leave never touches these
// numbers.
func (s *userService) UpdateLeaveBalance(ctx context.Context, id string, req *dto.LeaveBalanceRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.AnnualLeave != nil {
		user.AnnualLeave = *req.AnnualLeave
	}
	if req.SickLeave != nil {
		user.SickLeave = *req.SickLeave
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update leave balance failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return dto.NewUserResponse(user), nil
}
