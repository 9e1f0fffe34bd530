package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *model.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubUserRepo) List(_ context.Context) ([]model.User, error)  { return nil, nil }
func (s *stubUserRepo) Update(_ context.Context, _ *model.User) error { return nil }
func (s *stubUserRepo) Delete(_ context.Context, _ string) error      { return nil }
func (s *stubUserRepo) CountByJoiningYear(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

const testCookie = "orbit_session"

func newAuthEngine(jwtMgr *jwt.Manager, repo *stubUserRepo) *gin.Engine {
	r := gin.New()
	r.GET("/whoami", Auth(jwtMgr, nil, repo, testCookie), func(c *gin.Context) {
		role, _ := c.Get(CtxUserRole)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func newAuthManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing",
		SessionTTL: time.Hour,
	})
}

func TestAuthFromCookie(t *testing.T) {
	jwtMgr := newAuthManager()
	repo := &stubUserRepo{users: map[string]*model.User{
		"u1": {ID: "u1", Role: model.RoleHR},
	}}
	engine := newAuthEngine(jwtMgr, repo)

	token, err := jwtMgr.GenerateSessionToken("u1", "hr")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestAuthFromBearerHeader(t *testing.T) {
	jwtMgr := newAuthManager()
	repo := &stubUserRepo{users: map[string]*model.User{
		"u1": {ID: "u1", Role: model.RoleEmployee},
	}}
	engine := newAuthEngine(jwtMgr, repo)

	token, _ := jwtMgr.GenerateSessionToken("u1", "employee")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	jwtMgr := newAuthManager()
	engine := newAuthEngine(jwtMgr, &stubUserRepo{users: map[string]*model.User{}})

	// no token at all
	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: code = %d, want 401", w.Code)
	}

	// garbage token
	req = httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "garbage"})
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: code = %d, want 401", w.Code)
	}
}

func TestAuthDeletedUserTokenStopsWorking(t *testing.T) {
	jwtMgr := newAuthManager()
	repo := &stubUserRepo{users: map[string]*model.User{}}
	engine := newAuthEngine(jwtMgr, repo)

	// valid signature, but the user no longer exists
	token, _ := jwtMgr.GenerateSessionToken("gone", "admin")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
}

func TestAuthRoleComesFromDatabaseNotToken(t *testing.T) {
	jwtMgr := newAuthManager()
	repo := &stubUserRepo{users: map[string]*model.User{
		"u1": {ID: "u1", Role: model.RoleEmployee},
	}}
	engine := newAuthEngine(jwtMgr, repo)

	// token still claims admin; the database says employee
	token, _ := jwtMgr.GenerateSessionToken("u1", "admin")

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"role":"employee"}` {
		t.Errorf("body = %s, want the database role", got)
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/gated",
		func(c *gin.Context) { c.Set(CtxUserRole, model.RolePayroll) },
		RequireRole(model.RoleAdmin, model.RolePayroll),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/blocked",
		func(c *gin.Context) { c.Set(CtxUserRole, model.RoleEmployee) },
		RequireRole(model.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/gated", nil))
	if w.Code != http.StatusOK {
		t.Errorf("gated: code = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/blocked", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("blocked: code = %d, want 403", w.Code)
	}
}
