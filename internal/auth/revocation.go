package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "gymdesk-revoked-token||"

// RevocationStore keeps ids of logged-out tokens until they would have expired anyway.
type RevocationStore struct {
	redisClient *redis.Client
}

func NewRevocationStore(redisClient *redis.Client) *RevocationStore {
	return &RevocationStore{
		redisClient: redisClient,
	}
}

func (s *RevocationStore) Revoke(ctx context.Context, identity *Identity, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.revocation.revoke")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if identity.TokenID == "" {
		return fmt.Errorf("token has no id: %w", ErrInvalidToken)
	}

	ttl := identity.ExpiresAt.Sub(now)
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	if err := s.redisClient.Set(ctx, revokedKeyPrefix+identity.TokenID, identity.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("store revoked token: %w", err)
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.revocation.isRevoked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if tokenID == "" {
		return false, nil
	}

	n, err := s.redisClient.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
