package whatsapp

import (
	"errors"
	"sync"
	"time"
)

// ── Circuit breaker ──────────────────────────────────────────────────────────
// Closed → Open tras N fallos consecutivos; Open → HalfOpen al vencer openTimeout;
// HalfOpen deja pasar sondas y vuelve a Closed tras M éxitos.

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case stateClosed:
		return "closed"
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen el bridge se considera caído; no se intenta la llamada.
var ErrCircuitOpen = errors.New("whatsapp bridge: circuito abierto")

type breaker struct {
	mu               sync.Mutex
	state            breakerState
	failures         int
	successes        int
	openedAt         time.Time
	failureThreshold int
	successThreshold int
	openTimeout      time.Duration
	now              func() time.Time
}

func newBreaker(failureThreshold, successThreshold int, openTimeout time.Duration) *breaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if successThreshold <= 0 {
		successThreshold = 1
	}
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}
	return &breaker{
		failureThreshold: failureThreshold,
		successThreshold: successThreshold,
		openTimeout:      openTimeout,
		now:              time.Now,
	}
}

func (b *breaker) current() breakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == stateOpen && b.now().Sub(b.openedAt) >= b.openTimeout {
		b.state = stateHalfOpen
		b.successes = 0
	}
	return b.state
}

func (b *breaker) execute(fn func() error) error {
	if b.current() == stateOpen {
		return ErrCircuitOpen
	}
	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.failures++
		if b.state == stateHalfOpen || b.failures >= b.failureThreshold {
			b.state = stateOpen
			b.openedAt = b.now()
			b.failures = 0
		}
		return err
	}
	switch b.state {
	case stateClosed:
		b.failures = 0
	case stateHalfOpen:
		b.successes++
		if b.successes >= b.successThreshold {
			b.state = stateClosed
			b.failures = 0
		}
	}
	return nil
}
