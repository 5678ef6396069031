// Package whatsapp cliente HTTP del bridge de WhatsApp (servicio externo que mantiene la sesión).
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
)

var _ ports.Messenger = (*Client)(nil)

// Config parámetros del cliente.
type Config struct {
	BridgeURL        string
	Timeout          time.Duration
	FailureThreshold int
	OpenTimeout      time.Duration
}

// Client envía mensajes vía POST {bridge}/send y consulta GET {bridge}/health.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *breaker
	log     zerolog.Logger
}

// NewClient construye el cliente; Timeout 0 usa 10s.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BridgeURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cb:      newBreaker(cfg.FailureThreshold, 1, cfg.OpenTimeout),
		log:     log,
	}
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send entrega un mensaje. Un 4xx del bridge (número inválido) no abre el circuito.
func (c *Client) Send(ctx context.Context, phone, text string) error {
	body, err := json.Marshal(sendRequest{Phone: NormalizePhone(phone), Message: text})
	if err != nil {
		return err
	}
	var clientErr error
	err = c.cb.execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		status, detail, err := c.do(req)
		if err != nil {
			return err
		}
		switch {
		case status >= 500:
			return fmt.Errorf("whatsapp bridge: status %d: %s", status, detail)
		case status >= 400:
			clientErr = fmt.Errorf("whatsapp bridge rechazó el mensaje: status %d: %s", status, detail)
		}
		return nil
	})
	if err != nil {
		c.log.Warn().Err(err).Str("breaker", c.BreakerState()).Msg("envío whatsapp fallido")
		return err
	}
	return clientErr
}

// Health nil si el bridge responde 2xx.
func (c *Client) Health(ctx context.Context) error {
	return c.cb.execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
		if err != nil {
			return err
		}
		status, detail, err := c.do(req)
		if err != nil {
			return err
		}
		if status/100 != 2 {
			return fmt.Errorf("whatsapp bridge: status %d: %s", status, detail)
		}
		return nil
	})
}

// BreakerState estado del circuito para /whatsapp/status.
func (c *Client) BreakerState() string {
	return c.cb.current().String()
}

func (c *Client) do(req *http.Request) (int, string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("whatsapp bridge: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return resp.StatusCode, strings.TrimSpace(string(raw)), nil
}

// NormalizePhone deja solo dígitos y convierte el prefijo local 0 en 62.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		return "62" + digits[1:]
	}
	return digits
}
