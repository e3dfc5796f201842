package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Flash levels used by the templates to pick a style.
const (
	LevelSuccess = "success"
	LevelError   = "danger"
	LevelInfo    = "info"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// FlashStore queues flashes per session id. Pop returns and removes every
// queued flash in insertion order.
type FlashStore interface {
	Add(ctx context.Context, sid string, f Flash) error
	Pop(ctx context.Context, sid string) ([]Flash, error)
}

// RedisFlashStore keeps each session's flashes in a Redis list.
type RedisFlashStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisFlashStore returns a store whose lists expire after ttl without
// being read.
func NewRedisFlashStore(rdb *redis.Client, ttl time.Duration) *RedisFlashStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisFlashStore{rdb: rdb, ttl: ttl}
}

func flashKey(sid string) string { return "flash:" + sid }

func (s *RedisFlashStore) Add(ctx context.Context, sid string, f Flash) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	key := flashKey(sid)
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, b)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}

// Pop reads and deletes the list in one MULTI/EXEC so concurrent requests of
// the same session never see a flash twice.
func (s *RedisFlashStore) Pop(ctx context.Context, sid string) ([]Flash, error) {
	key := flashKey(sid)
	var items *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		items = p.LRange(ctx, key, 0, -1)
		p.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]Flash, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var f Flash
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// MemoryFlashStore is the in-process fallback used when Redis is unavailable.
type MemoryFlashStore struct {
	mu      sync.Mutex
	pending map[string][]Flash
}

func NewMemoryFlashStore() *MemoryFlashStore {
	return &MemoryFlashStore{pending: make(map[string][]Flash)}
}

func (s *MemoryFlashStore) Add(_ context.Context, sid string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[sid] = append(s.pending[sid], f)
	return nil
}

func (s *MemoryFlashStore) Pop(_ context.Context, sid string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending[sid]
	delete(s.pending, sid)
	if out == nil {
		out = []Flash{}
	}
	return out, nil
}
