package usecase

import (
	"context"
	"time"

	"kindred/internal/repository"
)

// ScoreCache is the hot key-value tier in front of the durable score table.
// Implementations must treat unavailability as a miss, never as a failure.
type ScoreCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const pairKeyPrefix = "compat:pair:"

func pairCacheKey(pair repository.PairKey) string {
	return pairKeyPrefix + pair.String()
}

// pairInvalidationPatterns matches the profile id on either side of the
// canonical pair key.
func pairInvalidationPatterns(profileID string) []string {
	return []string{
		pairKeyPrefix + profileID + ":*",
		pairKeyPrefix + "*:" + profileID,
	}
}
