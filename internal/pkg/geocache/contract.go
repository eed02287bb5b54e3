//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geocache_test
package geocache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}
