package shared

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"

	"biletado/shared/cache"
	"biletado/shared/constant"
	"biletado/shared/dto"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a prefix and its parts into a redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithFilter derives a stable cache key from a filter group by
// hashing its rendered where clause and arguments.
func BuildCacheKeyWithFilter(prefix string, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(args)
	if err != nil {
		raw = []byte(where)
	}

	sum := sha1.Sum(append([]byte(where), raw...))

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterisk); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// FilterByID builds the single-record filter used by lookups and mutations.
func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
