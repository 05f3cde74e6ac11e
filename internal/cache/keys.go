package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	RecentPostsKey = "posts:recent"
	StatsKey       = "site:stats"

	DenPostsKeyPrefix = "den:%d:posts"
	PostKeyPrefix     = "post:%d"
)

const (
	RecentPostsTTL = 1 * time.Minute
	StatsTTL       = 5 * time.Minute
	DenPostsTTL    = 1 * time.Minute
	PostTTL        = 5 * time.Minute
)

func DenPostsKey(denID uint) string {
	return fmt.Sprintf(DenPostsKeyPrefix, denID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidatePost drops every listing a post change can affect: the post
// itself, its den's ranking, and the site-wide recent list.
func InvalidatePost(ctx context.Context, postID, denID uint) {
	Invalidate(ctx, PostKey(postID), DenPostsKey(denID), RecentPostsKey)
}

func InvalidateDen(ctx context.Context, denID uint) {
	Invalidate(ctx, DenPostsKey(denID), RecentPostsKey)
}

func InvalidateStats(ctx context.Context) {
	Invalidate(ctx, StatsKey)
}
