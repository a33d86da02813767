package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Store 会话数据存储，按会话 ID 读写已阅读列表
type Store interface {
	Load(ctx context.Context, sessionID string) (*VisitedList, error)
	Save(ctx context.Context, sessionID string, list *VisitedList) error
}

// RedisStore 基于 Redis List 的会话存储
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore ...
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func visitedKey(sessionID string) string {
	return fmt.Sprintf("session:%s:visited", sessionID)
}

// Load 读取已阅读列表，会话不存在时返回空列表
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*VisitedList, error) {
	values, err := s.rdb.LRange(ctx, visitedKey(sessionID), 0, VisitedCapacity-1).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "load visited list")
	}

	ids := make([]uint64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			// 脏数据直接跳过，下一次保存时会被覆盖
			continue
		}
		ids = append(ids, id)
	}
	return NewVisitedList(ids...), nil
}

// Save 整体覆盖已阅读列表并刷新过期时间
func (s *RedisStore) Save(ctx context.Context, sessionID string, list *VisitedList) error {
	key := visitedKey(sessionID)
	ids := list.IDs()

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if len(ids) != 0 {
		values := make([]any, 0, len(ids))
		for _, id := range ids {
			values = append(values, strconv.FormatUint(id, 10))
		}
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, 0, VisitedCapacity-1)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "save visited list")
	}
	return nil
}

// MemoryStore 进程内会话存储（未接入 Redis 的本地开发 & 测试）
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]uint64
}

// NewMemoryStore ...
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]uint64{}}
}

// Load ...
func (s *MemoryStore) Load(_ context.Context, sessionID string) (*VisitedList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return NewVisitedList(s.data[sessionID]...), nil
}

// Save ...
func (s *MemoryStore) Save(_ context.Context, sessionID string, list *VisitedList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = list.IDs()
	return nil
}
