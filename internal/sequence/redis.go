package sequence

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Key holding the last issued ticket number.  INCR makes issuance
// atomic across replicas sharing the same Redis.
const counterKey = "tickets:last_number"

// Redis issues ticket numbers from a shared Redis counter so multiple
// instances never hand out the same number.
type Redis struct {
	rdb *redis.Client
}

// NewRedis returns a Redis-backed Provider.  The client must be non-nil;
// callers that got a nil client from config should use Memory instead.
func NewRedis(rdb *redis.Client) *Redis {
	if rdb == nil {
		panic("nil redis client passed to sequence.NewRedis")
	}
	return &Redis{rdb: rdb}
}

// Next atomically increments and returns the counter.
func (r *Redis) Next(ctx context.Context) (uint64, error) {
	n, err := r.rdb.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}
