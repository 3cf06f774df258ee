package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/contactapp/backend/internal/pkg/logger"
)

const (
	fingerprintKeyPrefix = "auth:fp:"
	revokedKeyPrefix     = "auth:revoked:"
)

// FingerprintStore keeps token fingerprint hashes and the revocation list in
// redis so every instance behind a load balancer sees the same auth state.
// Implements services.FingerprintStore.
type FingerprintStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewFingerprintStore(log *logger.Logger) (*FingerprintStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &FingerprintStore{
		log: log.With("client", "RedisFingerprintStore"),
		rdb: rdb,
	}, nil
}

func (s *FingerprintStore) PutFingerprint(ctx context.Context, tokenID, fingerprintHash string, ttl time.Duration) error {
	return s.rdb.Set(ctx, fingerprintKeyPrefix+tokenID, fingerprintHash, ttl).Err()
}

func (s *FingerprintStore) GetFingerprint(ctx context.Context, tokenID string) (string, error) {
	val, err := s.rdb.Get(ctx, fingerprintKeyPrefix+tokenID).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *FingerprintStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

func (s *FingerprintStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *FingerprintStore) Close() error {
	return s.rdb.Close()
}
