package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/contactapp/backend/internal/pkg/logger"
)

const testUsername = "admin"

func testSecret() string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Repeat("s", 32)))
}

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc, err := NewAuthService(logger.NewNop(), NewMemoryFingerprintStore(), testUsername, string(hash), testSecret(), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestNewAuthService_RejectsShortSecret(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte("tooshort"))
	_, err := NewAuthService(logger.NewNop(), NewMemoryFingerprintStore(), testUsername, "hash", short, time.Hour)
	if err == nil {
		t.Fatalf("expected error for a sub-32-byte secret")
	}
	_, err = NewAuthService(logger.NewNop(), NewMemoryFingerprintStore(), testUsername, "hash", "", time.Hour)
	if err == nil {
		t.Fatalf("expected error for an empty secret")
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, testUsername, "wrong password"); err == nil {
		t.Fatalf("expected error for a wrong password")
	}
	if _, err := svc.Login(ctx, "nobody", "correct horse"); err == nil {
		t.Fatalf("expected error for an unknown username")
	}
}

func TestAuthService_LoginVerifyRoundtrip(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, testUsername, "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" || result.Fingerprint == "" {
		t.Fatalf("login must return token and fingerprint")
	}

	subject, err := svc.Verify(ctx, result.Token, result.Fingerprint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != testUsername {
		t.Fatalf("expected subject %q, got %q", testUsername, subject)
	}
}

func TestAuthService_VerifyRejectsFingerprintMismatch(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, testUsername, "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(ctx, result.Token, ""); err == nil {
		t.Fatalf("expected error for a missing fingerprint")
	}
	other, err := GenerateFingerprint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(ctx, result.Token, other); err == nil {
		t.Fatalf("expected error for a foreign fingerprint")
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, testUsername, "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(ctx, result.Token, result.Fingerprint); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(ctx, result.Token, result.Fingerprint); err == nil {
		t.Fatalf("expected a revoked token to fail verification")
	}
}

func TestAuthService_VerifyRequiresServerSideFingerprintRecord(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, testUsername, "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same secret, fresh fingerprint store: signature and claim both check
	// out, but no record of the token was ever written here.
	other := newTestAuthServiceWithSecret(t, testSecret())
	if _, err := other.Verify(ctx, result.Token, result.Fingerprint); err == nil {
		t.Fatalf("expected verification to fail without a stored fingerprint record")
	}
}

func TestAuthService_VerifyRejectsForeignSignature(t *testing.T) {
	svc := newTestAuthService(t)
	other := newTestAuthServiceWithSecret(t, base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 32))))
	ctx := context.Background()

	result, err := other.Login(ctx, testUsername, "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Verify(ctx, result.Token, result.Fingerprint); err == nil {
		t.Fatalf("expected a token signed with another key to fail")
	}
}

func newTestAuthServiceWithSecret(t *testing.T, secret string) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc, err := NewAuthService(logger.NewNop(), NewMemoryFingerprintStore(), testUsername, string(hash), secret, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestFingerprintHelpers(t *testing.T) {
	fingerprint, err := GenerateFingerprint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fingerprint) != fingerprintBytes*2 {
		t.Fatalf("expected %d hex chars, got %d", fingerprintBytes*2, len(fingerprint))
	}
	if HashFingerprint(fingerprint) != HashFingerprint(fingerprint) {
		t.Fatalf("hash must be deterministic")
	}
	second, err := GenerateFingerprint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fingerprint == second {
		t.Fatalf("two generated fingerprints must differ")
	}
}

func TestMemoryFingerprintStore_ExpiryAndRevocation(t *testing.T) {
	st := NewMemoryFingerprintStore()
	ctx := context.Background()

	if err := st.PutFingerprint(ctx, "jti-1", "hash-1", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err := st.GetFingerprint(ctx, "jti-1")
	if err != nil || val != "hash-1" {
		t.Fatalf("expected hash-1, got %q / %v", val, err)
	}

	if err := st.PutFingerprint(ctx, "jti-2", "hash-2", -time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err = st.GetFingerprint(ctx, "jti-2")
	if err != nil || val != "" {
		t.Fatalf("expected expired entry to read empty, got %q / %v", val, err)
	}

	if err := st.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	revoked, err := st.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("expected jti-1 revoked, got %v / %v", revoked, err)
	}
	revoked, err = st.IsRevoked(ctx, "jti-3")
	if err != nil || revoked {
		t.Fatalf("expected jti-3 not revoked, got %v / %v", revoked, err)
	}
}
