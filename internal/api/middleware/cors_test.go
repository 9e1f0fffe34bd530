package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"orbit-hrms/backend/config"
)

func newCORSEngine() *gin.Engine {
	r := gin.New()
	r.Use(CORS(&config.CORSConfig{AllowOrigins: []string{"http://localhost:5173/"}}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newCORSEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q, want the requesting origin", got)
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Allow-Credentials missing")
	}
	if w.Header().Get("Vary") != "Origin" {
		t.Error("Vary: Origin missing")
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newCORSEngine()

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	methods := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(methods, "PATCH") || !strings.Contains(methods, "DELETE") {
		t.Errorf("Allow-Methods = %q, want PATCH and DELETE listed", methods)
	}
	if strings.Contains(methods, "PUT") {
		t.Errorf("Allow-Methods = %q, PUT is not served", methods)
	}
}

func TestCORSUnknownOrigin(t *testing.T) {
	r := newCORSEngine()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for an unlisted origin", got)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, request itself should still pass", w.Code)
	}
}
