package kv

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
)

// ErrQueueFull la cola en proceso no acepta más elementos.
var ErrQueueFull = errors.New("cola de notificaciones llena")

var (
	_ ports.IdempotencyStore  = (*LocalIdempotency)(nil)
	_ ports.Cache             = (*LocalCache)(nil)
	_ ports.NotificationQueue = (*ChanQueue)(nil)
	_ Consumer                = (*ChanQueue)(nil)
)

// LocalIdempotency equivalente en proceso de RedisIdempotency (una sola réplica).
type LocalIdempotency struct {
	mu   sync.Mutex
	keys map[string]time.Time
	now  func() time.Time
}

func NewLocalIdempotency() *LocalIdempotency {
	return &LocalIdempotency{keys: map[string]time.Time{}, now: time.Now}
}

func (s *LocalIdempotency) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if exp, ok := s.keys[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.keys[key] = now.Add(ttl)
	return true, nil
}

func (s *LocalIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
	return nil
}

type cacheEntry struct {
	payload []byte
	expires time.Time
}

// LocalCache guarda JSON igual que RedisCache para que ambos se comporten igual.
type LocalCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewLocalCache() *LocalCache {
	return &LocalCache{entries: map[string]cacheEntry{}, now: time.Now}
}

func (c *LocalCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !c.now().Before(e.expires) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.payload, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *LocalCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{payload: payload, expires: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// ChanQueue cola acotada en memoria; Enqueue nunca bloquea.
type ChanQueue struct {
	ch chan ports.Notification
}

func NewChanQueue(size int) *ChanQueue {
	if size <= 0 {
		size = 256
	}
	return &ChanQueue{ch: make(chan ports.Notification, size)}
}

func (q *ChanQueue) Enqueue(_ context.Context, n ports.Notification) error {
	select {
	case q.ch <- n:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *ChanQueue) Dequeue(ctx context.Context, wait time.Duration) (*ports.Notification, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case n := <-q.ch:
		return &n, nil
	case <-timer.C:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
