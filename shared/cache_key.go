package shared

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"visitorpass/shared/cache"
	"visitorpass/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and parts with ':' skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	keys := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from paging parameters and the rendered filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	sort.Strings(names)

	values := make([]string, 0, len(names))
	for _, name := range names {
		values = append(values, fmt.Sprintf("%s=%v", name, args[name]))
	}

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("l%d", params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		strings.Join(values, ","),
	)
}

// InvalidateCaches drops every key stored under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
