package services

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactapp/backend/internal/pkg/logger"
)

// minSecretBytes is 256 bits, the floor for HMAC-SHA256 signing keys.
const minSecretBytes = 32

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Verify(ctx context.Context, tokenString, fingerprint string) (string, error)
	Logout(ctx context.Context, tokenString string) error
	AccessTTL() time.Duration
}

type LoginResult struct {
	Token       string
	Fingerprint string
	ExpiresIn   time.Duration
}

type authService struct {
	log          *logger.Logger
	fingerprints FingerprintStore
	username     string
	passwordHash string
	secret       []byte
	accessTTL    time.Duration
}

// NewAuthService validates the JWT configuration at startup: the secret is
// accepted base64-encoded (raw bytes as a fallback for legacy configs) and
// must decode to at least 256 bits.
func NewAuthService(
	log *logger.Logger,
	fingerprints FingerprintStore,
	username string,
	passwordHash string,
	jwtSecret string,
	accessTTL time.Duration,
) (AuthService, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("jwt secret must be configured; generate with: openssl rand -base64 32")
	}
	secret, err := base64.StdEncoding.DecodeString(jwtSecret)
	if err != nil {
		secret = []byte(jwtSecret)
	}
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes for HMAC-SHA256, got %d", minSecretBytes, len(secret))
	}
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("auth username and password hash must be configured")
	}
	return &authService{
		log:          log.With("service", "AuthService"),
		fingerprints: fingerprints,
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		accessTTL:    accessTTL,
	}, nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(as.username)) != 1 {
		// Still run the bcrypt compare so a wrong username costs the same.
		_ = bcrypt.CompareHashAndPassword([]byte(as.passwordHash), []byte(password))
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(as.passwordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	fingerprint, err := GenerateFingerprint()
	if err != nil {
		return nil, fmt.Errorf("generate fingerprint: %w", err)
	}
	fingerprintHash := HashFingerprint(fingerprint)

	tokenID := uuid.NewString()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"jti": tokenID,
		"fph": fingerprintHash,
		"iat": now.Unix(),
		"exp": now.Add(as.accessTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(as.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err := as.fingerprints.PutFingerprint(ctx, tokenID, fingerprintHash, as.accessTTL); err != nil {
		return nil, fmt.Errorf("store fingerprint: %w", err)
	}

	as.log.Info("Issued access token", "sub", username, "jti", tokenID)
	return &LoginResult{Token: token, Fingerprint: fingerprint, ExpiresIn: as.accessTTL}, nil
}

// Verify checks signature and expiry, the fingerprint binding against both
// the signed claim and the server-side record written at login, and the
// revocation list. Returns the token subject on success.
func (as *authService) Verify(ctx context.Context, tokenString, fingerprint string) (string, error) {
	claims, err := as.parseClaims(tokenString)
	if err != nil {
		return "", err
	}
	tokenID, _ := claims["jti"].(string)
	subject, _ := claims["sub"].(string)
	claimedHash, _ := claims["fph"].(string)
	if tokenID == "" || subject == "" || claimedHash == "" {
		return "", fmt.Errorf("token missing required claims")
	}

	if fingerprint == "" {
		return "", fmt.Errorf("missing token fingerprint")
	}
	providedHash := HashFingerprint(fingerprint)
	if subtle.ConstantTimeCompare([]byte(providedHash), []byte(claimedHash)) != 1 {
		return "", fmt.Errorf("token fingerprint mismatch")
	}

	// The record shares the token TTL, so its absence means the token either
	// expired or was never issued by this deployment.
	storedHash, err := as.fingerprints.GetFingerprint(ctx, tokenID)
	if err != nil {
		return "", fmt.Errorf("fingerprint lookup: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(providedHash), []byte(storedHash)) != 1 {
		return "", fmt.Errorf("token fingerprint record mismatch")
	}

	revoked, err := as.fingerprints.IsRevoked(ctx, tokenID)
	if err != nil {
		return "", fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return "", fmt.Errorf("token has been revoked")
	}
	return subject, nil
}

// Logout revokes the token for whatever lifetime it has left.
func (as *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := as.parseClaims(tokenString)
	if err != nil {
		return err
	}
	tokenID, _ := claims["jti"].(string)
	if tokenID == "" {
		return fmt.Errorf("token missing jti claim")
	}
	remaining := as.accessTTL
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		remaining = time.Until(exp.Time)
		if remaining <= 0 {
			return nil
		}
	}
	if err := as.fingerprints.Revoke(ctx, tokenID, remaining); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	as.log.Info("Revoked access token", "jti", tokenID)
	return nil
}

func (as *authService) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return as.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
