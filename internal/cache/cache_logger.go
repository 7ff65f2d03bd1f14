package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateUserStatsCache drops the cached per-category stats for a user.
// Called after every solved-question write and after a user purge.
func InvalidateUserStatsCache(ctx context.Context, cm *CacheManager, userID string) {
	SafeDelete(ctx, cm.Stats, fmt.Sprintf("user:%s", userID))
}

// InvalidateQuestionListCache drops the cached question list and category list.
// The bank is seeded out of band, so this only runs from administrative paths.
func InvalidateQuestionListCache(ctx context.Context, cm *CacheManager) {
	SafeDelete(ctx, cm.Question, "list")
	SafeDelete(ctx, cm.Fast, "categories")
}
