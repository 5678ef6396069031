package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
)

// NotificationQueueKey lista Redis de notificaciones pendientes.
const NotificationQueueKey = "queue:notifications"

var (
	_ ports.IdempotencyStore  = (*RedisIdempotency)(nil)
	_ ports.Cache             = (*RedisCache)(nil)
	_ ports.NotificationQueue = (*RedisQueue)(nil)
	_ Consumer                = (*RedisQueue)(nil)
)

// NewRedis crea el cliente a partir de REDIS_URL y valida la conexión.
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// ── Idempotencia ─────────────────────────────────────────────────────────────

// RedisIdempotency guarda de llaves con SET NX: compartida entre réplicas.
type RedisIdempotency struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisIdempotency(rdb *redis.Client) *RedisIdempotency {
	return &RedisIdempotency{rdb: rdb, prefix: "idem:"}
}

func (s *RedisIdempotency) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, s.prefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency acquire: %w", err)
	}
	return ok, nil
}

func (s *RedisIdempotency) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.prefix+key).Err()
}

// ── Caché ────────────────────────────────────────────────────────────────────

// RedisCache valores serializados en JSON.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, payload, ttl).Err()
}

// ── Cola ─────────────────────────────────────────────────────────────────────

// RedisQueue LPUSH al encolar, BRPOP al consumir (FIFO).
type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb, key: NotificationQueueKey}
}

func (q *RedisQueue) Enqueue(ctx context.Context, n ports.Notification) error {
	encoded, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, encoded).Err()
}

// Dequeue bloquea hasta wait; (nil, nil) si no llegó nada.
func (q *RedisQueue) Dequeue(ctx context.Context, wait time.Duration) (*ports.Notification, error) {
	result, err := q.rdb.BRPop(ctx, wait, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(result) < 2 {
		return nil, nil
	}
	var n ports.Notification
	if err := json.Unmarshal([]byte(result[1]), &n); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	return &n, nil
}
