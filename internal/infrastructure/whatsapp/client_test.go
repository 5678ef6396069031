package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "628112345678", NormalizePhone("0811-2345-678"))
	assert.Equal(t, "628112345678", NormalizePhone("+62 811 2345 678"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestSend_PublicaTelefonoYMensaje(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BridgeURL: srv.URL + "/"}, zerolog.Nop())
	require.NoError(t, c.Send(context.Background(), "0811", "hola"))
	assert.Equal(t, "62811", got.Phone)
	assert.Equal(t, "hola", got.Message)
}

func TestSend_CircuitoSeAbreYSeRecupera(t *testing.T) {
	var calls atomic.Int32
	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if !healthy.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BridgeURL: srv.URL, FailureThreshold: 2, OpenTimeout: time.Minute}, zerolog.Nop())
	clock := time.Now()
	c.cb.now = func() time.Time { return clock }
	ctx := context.Background()

	assert.Error(t, c.Send(ctx, "0811", "a"))
	assert.Error(t, c.Send(ctx, "0811", "b"))
	assert.Equal(t, "open", c.BreakerState())

	err := c.Send(ctx, "0811", "c")
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load(), "con el circuito abierto no se llama al bridge")

	healthy.Store(true)
	clock = clock.Add(2 * time.Minute)
	assert.Equal(t, "half-open", c.BreakerState())
	require.NoError(t, c.Send(ctx, "0811", "d"))
	assert.Equal(t, "closed", c.BreakerState())
}

func TestSend_4xxNoAbreElCircuito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid phone", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(Config{BridgeURL: srv.URL, FailureThreshold: 1}, zerolog.Nop())
	err := c.Send(context.Background(), "x", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid phone")
	assert.Equal(t, "closed", c.BreakerState())
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BridgeURL: srv.URL}, zerolog.Nop())
	assert.NoError(t, c.Health(context.Background()))
}
