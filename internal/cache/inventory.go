package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	BlogKeyPrefix = "blog:%d"
	BlogsListKey  = "blogs:list"
	BlogsStatsKey = "blogs:stats"
)

const (
	UserTTL  = 5 * time.Minute
	BlogTTL  = 30 * time.Minute
	ListTTL  = time.Minute
	StatsTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func BlogKey(blogID uint) string {
	return fmt.Sprintf(BlogKeyPrefix, blogID)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateBlog drops the blog entry along with the list and stats
// aggregates derived from it.
func InvalidateBlog(ctx context.Context, blogID uint) {
	Invalidate(ctx, BlogKey(blogID), BlogsListKey, BlogsStatsKey)
}
