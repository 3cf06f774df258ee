package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/services"
)

// SubjectKey is where RequireAuth stores the verified token subject on the
// gin context.
const SubjectKey = "auth_subject"

// FingerprintCookie carries the raw token fingerprint; its hash lives inside
// the JWT, and the two must match on every authenticated request.
const FingerprintCookie = "fgp"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		fingerprint := extractFingerprint(c)
		subject, err := am.authService.Verify(c.Request.Context(), tokenString, fingerprint)
		if err != nil {
			am.log.Debug("Token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(SubjectKey, subject)
		c.Next()
	}
}

// ExtractToken pulls the bearer token from the Authorization header, falling
// back to the token query parameter. A header without the Bearer scheme yields
// the empty string rather than a mangled token.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return c.Query("token")
}

func extractFingerprint(c *gin.Context) string {
	if cookie, err := c.Cookie(FingerprintCookie); err == nil && cookie != "" {
		return cookie
	}
	return c.GetHeader("X-Auth-Fingerprint")
}
