package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

const cacheTTL = 5 * time.Minute

// interestCache keeps per-viewer sent/accepted interest id sets in
// Redis so a browse cycle does not hit Postgres for data that changes
// rarely. Any Redis failure reads as a miss; the pipeline falls back
// to the repository.
type interestCache struct {
	client *redis.Client
}

func NewInterestCache(client *redis.Client) repository.InterestCache {
	return &interestCache{client: client}
}

func sentKey(userID string) string     { return fmt.Sprintf("interest:sent:%s", userID) }
func acceptedKey(userID string) string { return fmt.Sprintf("interest:accepted:%s", userID) }

func (c *interestCache) SentIDs(ctx context.Context, userID string) ([]string, bool) {
	return c.members(ctx, sentKey(userID))
}

func (c *interestCache) StoreSentIDs(ctx context.Context, userID string, ids []string) {
	c.store(ctx, sentKey(userID), ids)
}

func (c *interestCache) AddSentID(ctx context.Context, userID, receiverID string) {
	key := sentKey(userID)
	// Only extend an existing set; seeding a partial one would hide
	// earlier interests until the TTL expires.
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return
	}
	if err := c.client.SAdd(ctx, key, receiverID).Err(); err != nil {
		fmt.Printf("redis SADD failed for %s: %v\n", key, err)
	}
}

func (c *interestCache) AcceptedIDs(ctx context.Context, userID string) ([]string, bool) {
	return c.members(ctx, acceptedKey(userID))
}

func (c *interestCache) StoreAcceptedIDs(ctx context.Context, userID string, ids []string) {
	c.store(ctx, acceptedKey(userID), ids)
}

func (c *interestCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, sentKey(userID), acceptedKey(userID)).Err(); err != nil {
		fmt.Printf("redis DEL failed for %s: %v\n", userID, err)
	}
}

func (c *interestCache) members(ctx context.Context, key string) ([]string, bool) {
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return nil, false
	}
	ids, err := c.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	// The sentinel member marks an intentionally empty set.
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != emptySentinel {
			out = append(out, id)
		}
	}
	return out, true
}

// emptySentinel lets an empty id set live in Redis; SADD of zero
// members would otherwise leave no key to distinguish from a miss.
const emptySentinel = "__none__"

func (c *interestCache) store(ctx context.Context, key string, ids []string) {
	members := make([]interface{}, 0, len(ids)+1)
	members = append(members, emptySentinel)
	for _, id := range ids {
		members = append(members, id)
	}
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, cacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		fmt.Printf("redis cache store failed for %s: %v\n", key, err)
	}
}
