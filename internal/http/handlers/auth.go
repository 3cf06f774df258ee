package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/middleware"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/platform/apierr"
	"github.com/contactapp/backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/v1/auth/login
//
// On success the raw fingerprint travels back twice: as an HttpOnly cookie
// for browser clients, and in the body for clients that prefer the
// X-Auth-Fingerprint header.
func (ah *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	result, err := ah.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		ah.log.Debug("Login rejected", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": apierr.CodeInvalidCredentials})
		return
	}

	maxAge := int(result.ExpiresIn.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.FingerprintCookie, result.Fingerprint, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":       result.Token,
		"fingerprint": result.Fingerprint,
		"expires_in":  maxAge,
	})
}

// POST /api/v1/auth/logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	tokenString := middleware.ExtractToken(c)
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": "missing bearer token"})
		return
	}
	if err := ah.authService.Logout(c.Request.Context(), tokenString); err != nil {
		ah.log.Debug("Logout failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.SetCookie(middleware.FingerprintCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
