package rdx

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

const trendingTagsKey = "trending:tags"

func Init(ctx context.Context) error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return err
	}
	Conn = client
	return nil
}

// SetUsername caches userid -> username for feed hydration.
func SetUsername(ctx context.Context, userID, username string) {
	if Conn == nil {
		return
	}
	Conn.HSet(ctx, "users", userID, username)
}

// GetUsernames resolves a batch of user ids; misses map to "".
func GetUsernames(ctx context.Context, userIDs []string) map[string]string {
	out := make(map[string]string, len(userIDs))
	if Conn == nil || len(userIDs) == 0 {
		return out
	}

	pipe := Conn.Pipeline()
	cmds := make([]*redis.StringCmd, len(userIDs))
	for i, id := range userIDs {
		cmds[i] = pipe.HGet(ctx, "users", id)
	}
	_, _ = pipe.Exec(ctx)
	for i, cmd := range cmds {
		if username, err := cmd.Result(); err == nil {
			out[userIDs[i]] = username
		}
	}
	return out
}

// BumpTrendingTags increments engagement counters per tag.
func BumpTrendingTags(ctx context.Context, tags []string) {
	if Conn == nil {
		return
	}
	for _, tag := range tags {
		Conn.ZIncrBy(ctx, trendingTagsKey, 1, tag)
	}
}

// TrendingTags returns the top n tags by engagement count.
func TrendingTags(ctx context.Context, n int64) ([]redis.Z, error) {
	if Conn == nil {
		return []redis.Z{}, nil
	}
	return Conn.ZRevRangeWithScores(ctx, trendingTagsKey, 0, n-1).Result()
}
