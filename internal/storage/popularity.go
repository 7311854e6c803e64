package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PopularityStore keeps per-restaurant order counters in Redis sorted sets:
// a TTL'd daily set plus an all-time set. It is strictly read-only with
// respect to cart and order state.
type PopularityStore struct {
	rdb *redis.Client
}

func NewPopularityStore(rdb *redis.Client) *PopularityStore {
	return &PopularityStore{rdb: rdb}
}

type ItemCount struct {
	ItemID string  `json:"item_id"`
	Count  float64 `json:"count"`
}

func dailyKey(restaurantID string, day time.Time) string {
	return fmt.Sprintf("popularity:daily:%s:%s", day.Format("2006-01-02"), restaurantID)
}

func allTimeKey(restaurantID string) string {
	return fmt.Sprintf("popularity:alltime:%s", restaurantID)
}

// RecordOrderItem bumps the counters for one ordered item.
func (s *PopularityStore) RecordOrderItem(ctx context.Context, restaurantID, itemID string, quantity int) error {
	daily := dailyKey(restaurantID, time.Now())
	if err := s.rdb.ZIncrBy(ctx, daily, float64(quantity), itemID).Err(); err != nil {
		return err
	}
	s.rdb.Expire(ctx, daily, 7*24*time.Hour)

	return s.rdb.ZIncrBy(ctx, allTimeKey(restaurantID), float64(quantity), itemID).Err()
}

// TopItems returns up to limit item ids for a restaurant, most ordered
// first, from the all-time set.
func (s *PopularityStore) TopItems(ctx context.Context, restaurantID string, limit int) ([]ItemCount, error) {
	if limit <= 0 {
		limit = 10
	}
	members, err := s.rdb.ZRevRangeWithScores(ctx, allTimeKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]ItemCount, 0, len(members))
	for _, member := range members {
		id, ok := member.Member.(string)
		if !ok {
			continue
		}
		counts = append(counts, ItemCount{ItemID: id, Count: member.Score})
	}
	return counts, nil
}
