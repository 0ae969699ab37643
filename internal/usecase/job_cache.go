package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"hireboard/internal/domain/job"
)

// ListingCache is the read-through cache in front of the public job listing.
// *cache.Redis satisfies it; a nil cache disables caching entirely.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const activeJobsKeyPrefix = "jobs:active:"

// activeJobsCacheKey is a deterministic digest of the normalized filter, so
// identical queries share a cache entry regardless of field casing or
// surrounding whitespace.
func activeJobsCacheKey(f job.Filter) string {
	norm := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(f.Search)),
		strings.ToLower(strings.TrimSpace(f.Location)),
		strings.ToLower(strings.TrimSpace(f.JobType)),
	}, "\x1f")

	sum := sha256.Sum256([]byte(norm))
	return activeJobsKeyPrefix + hex.EncodeToString(sum[:8])
}
