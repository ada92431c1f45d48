package constants

import (
	"fmt"

	"github.com/google/uuid"
)

// Redis key layout for the application.
// Cache entries use the pattern cinebook:{module}:{operation}:{identifier};
// seat locks use the legacy seat:{seat}:{show} format that clients and
// operational tooling already key on.

const (
	CachePrefix = "cinebook"
)

// Show catalog cache keys
const (
	CacheKeyShowDetail = CachePrefix + ":shows:detail:uuid:" // + show-id
	CacheKeyShowList   = CachePrefix + ":shows:list"

	PatternInvalidateShows = CachePrefix + ":shows:*"
)

// SeatLockKey forms the lock key for one seat of one show. Seat numbering
// is per-show, so the show id is always part of the key.
func SeatLockKey(showID uuid.UUID, seatNumber int) string {
	return fmt.Sprintf("seat:%d:%s", seatNumber, showID)
}

// BuildShowDetailKey returns the cache key for one show's detail entry
func BuildShowDetailKey(showID string) string {
	return CacheKeyShowDetail + showID
}
