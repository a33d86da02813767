package session

import "sync"

var (
	defaultStore Store = NewMemoryStore()
	storeMu      sync.RWMutex
)

// DefaultStore 获取全局会话存储（未设置时为进程内存储）
func DefaultStore() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return defaultStore
}

// SetDefaultStore 设置全局会话存储，webserver 启动时设置为 RedisStore
func SetDefaultStore(s Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	defaultStore = s
}
