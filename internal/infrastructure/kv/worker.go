package kv

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
)

// Consumer extremo de lectura de una cola de notificaciones.
type Consumer interface {
	// Dequeue espera hasta wait; devuelve (nil, nil) si no hubo elementos.
	Dequeue(ctx context.Context, wait time.Duration) (*ports.Notification, error)
}

// Handler procesa una notificación; un error se registra y la notificación se descarta.
type Handler func(ctx context.Context, n ports.Notification) error

// WorkerPool N goroutines consumiendo la misma cola. Sin CPU en reposo: cada una bloquea en Dequeue.
type WorkerPool struct {
	consumer Consumer
	handle   Handler
	workers  int
	wait     time.Duration
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewWorkerPool workers <= 0 usa 2.
func NewWorkerPool(consumer Consumer, handle Handler, workers int, log zerolog.Logger) *WorkerPool {
	if workers <= 0 {
		workers = 2
	}
	return &WorkerPool{consumer: consumer, handle: handle, workers: workers, wait: 5 * time.Second, log: log}
}

// Start lanza los workers; terminan cuando ctx se cancela.
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	p.log.Info().Int("workers", p.workers).Msg("worker pool iniciado")
}

// Wait bloquea hasta que todos los workers salen.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		if ctx.Err() != nil {
			p.log.Debug().Int("worker", id).Msg("worker detenido")
			return
		}
		n, err := p.consumer.Dequeue(ctx, p.wait)
		if err != nil {
			if ctx.Err() == nil {
				p.log.Warn().Err(err).Int("worker", id).Msg("lectura de cola fallida")
				time.Sleep(time.Second)
			}
			continue
		}
		if n == nil {
			continue
		}
		p.process(ctx, id, *n)
	}
}

func (p *WorkerPool) process(ctx context.Context, id int, n ports.Notification) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Int("worker", id).Msg("panic procesando notificación")
		}
	}()
	if err := p.handle(ctx, n); err != nil {
		p.log.Warn().Err(err).Str("kind", n.Kind).Str("reference", n.Reference).Msg("notificación no entregada")
	}
}
