// Package notification envía recibos y recordatorios por WhatsApp.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain"
	dommembership "github.com/jhoicas/otopia-pos/internal/domain/membership"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// breakerReporter lo implementan los mensajeros con circuit breaker.
type breakerReporter interface {
	BreakerState() string
}

// Config parámetros del envío.
type Config struct {
	Enabled      bool
	BusinessName string
	ReminderDays int
	SendTimeout  time.Duration
}

// UseCase casos de uso de notificación.
type UseCase struct {
	store     repository.Store
	messenger ports.Messenger
	queue     ports.NotificationQueue
	metrics   ports.Metrics
	cfg       Config
	log       zerolog.Logger
	now       func() time.Time
}

// NewUseCase construye el caso de uso. metrics puede ser nil.
func NewUseCase(store repository.Store, messenger ports.Messenger, queue ports.NotificationQueue, metrics ports.Metrics, cfg Config, log zerolog.Logger) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if cfg.ReminderDays <= 0 {
		cfg.ReminderDays = 3
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	return &UseCase{store: store, messenger: messenger, queue: queue, metrics: metrics, cfg: cfg, log: log, now: time.Now}
}

// SendReceipt envía el recibo de forma síncrona; el fallo llega al llamador.
func (uc *UseCase) SendReceipt(ctx context.Context, in dto.SendReceiptRequest) error {
	txn, err := uc.store.Transactions.GetByID(ctx, in.TransactionID)
	if err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: transacción", domain.ErrNotFound)
	}
	return uc.send(ctx, ports.Notification{
		Kind:      KindReceipt,
		Phone:     in.Phone,
		Text:      ReceiptMessage(uc.cfg.BusinessName, txn),
		Reference: txn.InvoiceNumber,
	})
}

// SendTest mensaje de prueba síncrono.
func (uc *UseCase) SendTest(ctx context.Context, in dto.SendTestRequest) error {
	return uc.send(ctx, ports.Notification{Kind: KindTest, Phone: in.Phone, Text: in.Message})
}

// CheckExpiring encola un recordatorio por cada membresía a la que le quedan
// exactamente ReminderDays días y cuyo cliente tiene teléfono. Devuelve cuántos se encolaron.
func (uc *UseCase) CheckExpiring(ctx context.Context) (int, error) {
	now := uc.now().UTC()
	days := uc.cfg.ReminderDays
	from := now.Add(time.Duration(days) * 24 * time.Hour)
	to := from.Add(24 * time.Hour)
	list, err := uc.store.Memberships.ListEndingBetween(ctx, from, to)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, m := range list {
		if dommembership.DaysRemaining(m.EndDate, now) != days {
			continue
		}
		customer, err := uc.store.Customers.GetByID(ctx, m.CustomerID)
		if err != nil {
			return sent, err
		}
		if customer == nil || customer.Phone == "" {
			continue
		}
		n := ports.Notification{
			Kind:      KindReminder,
			Phone:     customer.Phone,
			Text:      ReminderMessage(uc.cfg.BusinessName, customer.Name, m, days),
			Reference: m.ID,
		}
		if err := uc.queue.Enqueue(ctx, n); err != nil {
			uc.log.Error().Err(err).Str("membership_id", m.ID).Msg("no se pudo encolar el recordatorio")
			continue
		}
		sent++
	}
	uc.log.Info().Int("sent", sent).Int("days", days).Msg("recordatorios de membresía encolados")
	return sent, nil
}

// Status salud del puente de mensajería.
func (uc *UseCase) Status(ctx context.Context) dto.MessengerStatusResponse {
	out := dto.MessengerStatusResponse{Enabled: uc.cfg.Enabled}
	if br, ok := uc.messenger.(breakerReporter); ok {
		out.Breaker = br.BreakerState()
	}
	if !uc.cfg.Enabled {
		return out
	}
	hctx, cancel := context.WithTimeout(ctx, uc.cfg.SendTimeout)
	defer cancel()
	if err := uc.messenger.Health(hctx); err != nil {
		out.Detail = err.Error()
		return out
	}
	out.Connected = true
	return out
}

// Deliver entrega una notificación encolada; lo invocan los workers de la cola.
func (uc *UseCase) Deliver(ctx context.Context, n ports.Notification) error {
	return uc.send(ctx, n)
}

func (uc *UseCase) send(ctx context.Context, n ports.Notification) error {
	if !uc.cfg.Enabled {
		uc.log.Debug().Str("kind", n.Kind).Str("phone", n.Phone).Msg("mensajería deshabilitada, mensaje descartado")
		return fmt.Errorf("%w: WhatsApp deshabilitado", domain.ErrNotificationFailed)
	}
	sctx, cancel := context.WithTimeout(ctx, uc.cfg.SendTimeout)
	defer cancel()
	err := uc.messenger.Send(sctx, n.Phone, n.Text)
	uc.metrics.NotificationDelivered(n.Kind, err)
	if err != nil {
		uc.log.Warn().Err(err).Str("kind", n.Kind).Str("reference", n.Reference).Msg("fallo al enviar notificación")
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	uc.log.Info().Str("kind", n.Kind).Str("reference", n.Reference).Msg("notificación enviada")
	return nil
}
