package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/narasux/goarticle/pkg/envs"
	"github.com/narasux/goarticle/pkg/logging"
)

var (
	rdb         *redis.Client
	rdbInitOnce sync.Once
)

// Client 获取 Redis 客户端
func Client() *redis.Client {
	if rdb == nil {
		log.Fatal("redis client not init")
	}
	return rdb
}

// InitRedisClient 初始化 Redis 客户端
func InitRedisClient(ctx context.Context) {
	if rdb != nil {
		return
	}
	rdbInitOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     envs.RedisAddr,
			Password: envs.RedisPassword,
			DB:       envs.RedisDB,
		})

		cCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := client.Ping(cCtx).Err(); err != nil {
			log.Fatalf("failed to connect redis %s: %s", envs.RedisAddr, err)
		}
		logging.GetSystemLogger().Infof("redis: %s connected", envs.RedisAddr)
		rdb = client
	})
}
