package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Token fingerprinting binds a JWT to the client that obtained it: a random
// value goes back to the client, only its SHA-256 hash travels inside the
// token, and the two are compared on every request. A stolen token is useless
// without the fingerprint.

// fingerprintBytes is 50 bytes, 100 hex chars on the wire.
const fingerprintBytes = 50

// FingerprintStore keeps fingerprint hashes and revoked token ids, each with
// a TTL matching the token lifetime.
type FingerprintStore interface {
	PutFingerprint(ctx context.Context, tokenID, fingerprintHash string, ttl time.Duration) error
	GetFingerprint(ctx context.Context, tokenID string) (string, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// GenerateFingerprint returns a new random fingerprint in hex.
func GenerateFingerprint() (string, error) {
	raw := make([]byte, fingerprintBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// HashFingerprint returns the SHA-256 hex digest embedded in the JWT.
func HashFingerprint(fingerprint string) string {
	sum := sha256.Sum256([]byte(fingerprint))
	return hex.EncodeToString(sum[:])
}

// memoryFingerprintStore backs FingerprintStore when redis is not configured
// (local development and tests). Entries expire lazily on read.
type memoryFingerprintStore struct {
	mu           sync.Mutex
	fingerprints map[string]expiringValue
	revoked      map[string]time.Time
}

type expiringValue struct {
	value     string
	expiresAt time.Time
}

func NewMemoryFingerprintStore() FingerprintStore {
	return &memoryFingerprintStore{
		fingerprints: make(map[string]expiringValue),
		revoked:      make(map[string]time.Time),
	}
}

func (m *memoryFingerprintStore) PutFingerprint(_ context.Context, tokenID, fingerprintHash string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fingerprints[tokenID] = expiringValue{value: fingerprintHash, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *memoryFingerprintStore) GetFingerprint(_ context.Context, tokenID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.fingerprints[tokenID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(m.fingerprints, tokenID)
		return "", nil
	}
	return entry.value, nil
}

func (m *memoryFingerprintStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

func (m *memoryFingerprintStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	until, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(m.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
