package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/services"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *services.LoginResult) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secret := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("s", 32)))
	authService, err := services.NewAuthService(logger.NewNop(), services.NewMemoryFingerprintStore(), "admin", string(hash), secret, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := authService.Login(context.Background(), "admin", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := gin.New()
	protected := router.Group("/")
	protected.Use(NewAuthMiddleware(logger.NewNop(), authService).RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(SubjectKey)})
	})
	return router, result
}

func TestRequireAuth_AcceptsBearerTokenWithFingerprintHeader(t *testing.T) {
	router, login := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	req.Header.Set("X-Auth-Fingerprint", login.Fingerprint)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "admin") {
		t.Fatalf("expected subject in response, got %s", rec.Body.String())
	}
}

func TestRequireAuth_AcceptsFingerprintCookie(t *testing.T) {
	router, login := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	req.AddCookie(&http.Cookie{Name: FingerprintCookie, Value: login.Fingerprint})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuth_RejectsMissingTokenOrFingerprint(t *testing.T) {
	router, login := newProtectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without fingerprint, got %d", rec.Code)
	}
}
