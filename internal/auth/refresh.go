package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karimhasan/inventory-manager/internal/redissvc"
)

const refreshTTL = 7 * 24 * time.Hour

var (
	rdb *redis.Client
	ctx context.Context

	ErrRefreshTokenInvalid = errors.New("refresh token invalid or expired")
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func refreshKey(token string) string {
	return "auth:refresh:" + token
}

// IssueRefreshToken stores a fresh opaque token for the username. Expiry is
// handled by the key TTL, so no cleanup loop is needed.
func IssueRefreshToken(username string) (string, error) {
	if rdb == nil {
		return "", ErrRefreshTokenInvalid
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := rdb.Set(ctx, refreshKey(token), username, refreshTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

// RedeemRefreshToken consumes the token and returns the username it was
// issued for. Tokens are single use; the caller issues a replacement.
func RedeemRefreshToken(token string) (string, error) {
	if rdb == nil {
		return "", ErrRefreshTokenInvalid
	}
	username, err := rdb.GetDel(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return username, nil
}

// RevokeRefreshToken drops the token, e.g. on logout.
func RevokeRefreshToken(token string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, refreshKey(token)).Err()
}
