package kv

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
)

func TestLocalIdempotency_AcquireYExpiracion(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewLocalIdempotency()
	s.now = func() time.Time { return clock }

	ok, err := s.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.Acquire(ctx, "k", time.Minute)
	assert.False(t, ok, "la llave sigue en proceso")

	clock = clock.Add(2 * time.Minute)
	ok, _ = s.Acquire(ctx, "k", time.Minute)
	assert.True(t, ok, "expirada")

	require.NoError(t, s.Release(ctx, "k"))
	ok, _ = s.Acquire(ctx, "k", time.Minute)
	assert.True(t, ok)
}

func TestLocalCache_TTL(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewLocalCache()
	c.now = func() time.Time { return clock }

	type payload struct{ Count int }
	require.NoError(t, c.Set(ctx, "stats", payload{Count: 7}, 30*time.Second))

	var got payload
	hit, err := c.Get(ctx, "stats", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, got.Count)

	clock = clock.Add(31 * time.Second)
	hit, err = c.Get(ctx, "stats", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestChanQueue_LlenaNoBloquea(t *testing.T) {
	ctx := context.Background()
	q := NewChanQueue(1)
	require.NoError(t, q.Enqueue(ctx, ports.Notification{Kind: "receipt"}))
	assert.ErrorIs(t, q.Enqueue(ctx, ports.Notification{Kind: "receipt"}), ErrQueueFull)

	n, err := q.Dequeue(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "receipt", n.Kind)

	n, err = q.Dequeue(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestWorkerPool_EntregaYSeDetiene(t *testing.T) {
	q := NewChanQueue(10)
	var delivered atomic.Int32
	pool := NewWorkerPool(q, func(_ context.Context, n ports.Notification) error {
		if n.Kind == "panic" {
			panic("boom")
		}
		delivered.Add(1)
		return nil
	}, 3, zerolog.Nop())
	pool.wait = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	require.NoError(t, q.Enqueue(ctx, ports.Notification{Kind: "panic"}))
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(ctx, ports.Notification{Kind: "reminder"}))
	}

	assert.Eventually(t, func() bool { return delivered.Load() == 5 }, time.Second, 5*time.Millisecond)
	cancel()
	pool.Wait()
}
