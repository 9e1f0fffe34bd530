package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/dto"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/pkg/jwt"
)

func newTestAuthService(repo *repository.Repository) AuthService {
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing",
		SessionTTL: time.Hour,
	})
	return NewAuthService(repo, jwtMgr, nil, zap.NewNop())
}

func seedLoginUser(t *testing.T, repo *repository.Repository, email, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		LoginID:       "OIJODO20240001",
		Name:          "John Doe",
		Email:         email,
		PasswordHash:  string(hash),
		Role:          role,
		Department:    "Engineering",
		YearOfJoining: 2024,
	}
	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newTestRepo()
	svc := newTestAuthService(repo)
	seedLoginUser(t, repo, "john@example.com", "secret-password", model.RoleHR)

	user, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "john@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("empty session token")
	}
	if user.Email != "john@example.com" || user.Role != model.RoleHR {
		t.Errorf("user = %s/%s, want john@example.com/hr", user.Email, user.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newTestRepo()
	svc := newTestAuthService(repo)
	seedLoginUser(t, repo, "john@example.com", "secret-password", model.RoleEmployee)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newTestRepo())

	// unknown email and wrong password are the same error
	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutWithoutRedis(t *testing.T) {
	svc := newTestAuthService(newTestRepo())

	// revocation degrades to a no-op when Redis is absent
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Logout: %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	repo := newTestRepo()
	svc := newTestAuthService(repo)
	seeded := seedLoginUser(t, repo, "john@example.com", "secret-password", model.RoleEmployee)

	user, err := svc.CurrentUser(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("id = %q, want %q", user.ID, seeded.ID)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user err = %v, want ErrUserNotFound", err)
	}
}
