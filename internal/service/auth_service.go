package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/pkg/jwt"
	"orbit-hrms/backend/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles login, logout, and session identity.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// Login verifies the credentials and returns the sanitized user together
// with a signed session token. Wrong password and unknown email are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("lookup user by email failed", zap.Error(err))
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("generate session token failed", zap.Error(err))
		return nil, "", err
	}

	return dto.NewUserResponse(user), token, nil
}

// Logout revokes the session token for its remaining lifetime. Without
// Redis the token simply ages out; that degradation is accepted.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("blacklist session token failed", zap.Error(err))
		return err
	}
	return nil
}

// CurrentUser loads the session user's own record.
func (s *authService) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
