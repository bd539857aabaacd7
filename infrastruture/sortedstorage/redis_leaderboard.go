package sortedstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyKey is returned when a leaderboard is created without a key.
var ErrEmptyKey = errors.New("leaderboard key is empty")

// RedisLeaderboard keeps scores in a Redis sorted set.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (*RedisLeaderboard, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client: client,
		locker: redsync.New(pool),
		key:    key,
	}, nil
}

// Best returns the highest score in the set, or 0 when it is empty.
func (rl *RedisLeaderboard) Best(ctx context.Context) (int, error) {
	top, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("reading best score: %w", err)
	}
	if len(top) == 0 {
		return 0, nil
	}
	return int(top[0].Score), nil
}

// Submit adds member with score and reports whether it beats every earlier score.
// The read and the write happen under a lock so concurrent submitters agree on the winner.
func (rl *RedisLeaderboard) Submit(ctx context.Context, member string, score int) (bool, error) {
	mutex := rl.locker.NewMutex(rl.key + ":submit_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return false, fmt.Errorf("locking leaderboard: %w", err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	best, err := rl.Best(ctx)
	if err != nil {
		return false, err
	}

	if err := rl.client.ZAdd(ctx, rl.key, redis.Z{Score: float64(score), Member: member}).Err(); err != nil {
		return false, fmt.Errorf("adding score: %w", err)
	}
	return score > best, nil
}
