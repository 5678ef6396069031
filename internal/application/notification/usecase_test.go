package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

type fakeMessenger struct {
	sent   []string
	fail   error
	health error
}

func (m *fakeMessenger) Send(_ context.Context, phone, text string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, phone+"|"+text)
	return nil
}

func (m *fakeMessenger) Health(context.Context) error { return m.health }

func (m *fakeMessenger) BreakerState() string { return "closed" }

type sliceQueue struct{ items []ports.Notification }

func (q *sliceQueue) Enqueue(_ context.Context, n ports.Notification) error {
	q.items = append(q.items, n)
	return nil
}

type countingMetrics struct {
	ports.NopMetrics
	ok, failed int
}

func (m *countingMetrics) NotificationDelivered(_ string, err error) {
	if err != nil {
		m.failed++
		return
	}
	m.ok++
}

func setup(t *testing.T) (*UseCase, *fakeMessenger, *sliceQueue, *countingMetrics, time.Time) {
	t.Helper()
	ctx := context.Background()
	store := memory.New().Repositories()
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Customers.Create(ctx, &entity.Customer{ID: "c-1", Name: "Andi", Phone: "0811"}))
	require.NoError(t, store.Customers.Create(ctx, &entity.Customer{ID: "c-2", Name: "Tanpa HP"}))
	require.NoError(t, store.Memberships.Create(ctx, &entity.Membership{
		ID: "m-3d", CustomerID: "c-1", MembershipType: entity.MembershipMonthly, EndDate: now.AddDate(0, 0, 3).Add(2 * time.Hour),
	}))
	require.NoError(t, store.Memberships.Create(ctx, &entity.Membership{
		ID: "m-nophone", CustomerID: "c-2", MembershipType: entity.MembershipMonthly, EndDate: now.AddDate(0, 0, 3),
	}))
	require.NoError(t, store.Memberships.Create(ctx, &entity.Membership{
		ID: "m-5d", CustomerID: "c-1", MembershipType: entity.MembershipAnnual, EndDate: now.AddDate(0, 0, 5),
	}))
	require.NoError(t, store.Transactions.Create(ctx, &entity.Transaction{
		ID: "t-1", InvoiceNumber: "INV-20260401-0001", CustomerName: "Andi",
		Items: []entity.LineItem{{
			ServiceID: "s-1", Name: "Cuci Mobil",
			Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50000), Subtotal: decimal.NewFromInt(50000),
		}},
		Total: decimal.NewFromInt(50000), PaymentMethod: entity.PaymentCash,
		PaymentReceived: decimal.NewFromInt(100000), ChangeAmount: decimal.NewFromInt(50000), CreatedAt: now,
	}))

	messenger := &fakeMessenger{}
	queue := &sliceQueue{}
	metrics := &countingMetrics{}
	uc := NewUseCase(store, messenger, queue, metrics, Config{Enabled: true, BusinessName: "OTOPIA", ReminderDays: 3}, zerolog.Nop())
	uc.now = func() time.Time { return now }
	return uc, messenger, queue, metrics, now
}

func TestCheckExpiring_SoloExactamenteNDiasConTelefono(t *testing.T) {
	uc, _, queue, _, _ := setup(t)

	sent, err := uc.CheckExpiring(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, queue.items, 1)
	assert.Equal(t, KindReminder, queue.items[0].Kind)
	assert.Equal(t, "0811", queue.items[0].Phone)
	assert.Equal(t, "m-3d", queue.items[0].Reference)
	assert.Contains(t, queue.items[0].Text, "Andi")
	assert.Contains(t, queue.items[0].Text, "3 hari")
}

func TestSendReceipt_Sincrono(t *testing.T) {
	uc, messenger, _, metrics, _ := setup(t)

	require.NoError(t, uc.SendReceipt(context.Background(), dto.SendReceiptRequest{TransactionID: "t-1", Phone: "0811"}))
	require.Len(t, messenger.sent, 1)
	assert.Contains(t, messenger.sent[0], "INV-20260401-0001")
	assert.Contains(t, messenger.sent[0], "Rp 50.000")
	assert.Equal(t, 1, metrics.ok)

	err := uc.SendReceipt(context.Background(), dto.SendReceiptRequest{TransactionID: "nada", Phone: "0811"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSend_FalloDelPuente(t *testing.T) {
	uc, messenger, _, metrics, _ := setup(t)
	messenger.fail = errors.New("bridge caído")

	err := uc.SendTest(context.Background(), dto.SendTestRequest{Phone: "0811", Message: "hola"})
	require.ErrorIs(t, err, domain.ErrNotificationFailed)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, 1, metrics.failed)
}

func TestStatus(t *testing.T) {
	uc, messenger, _, _, _ := setup(t)

	st := uc.Status(context.Background())
	assert.True(t, st.Enabled)
	assert.True(t, st.Connected)
	assert.Equal(t, "closed", st.Breaker)

	messenger.health = errors.New("sin sesión")
	st = uc.Status(context.Background())
	assert.False(t, st.Connected)
	assert.Equal(t, "sin sesión", st.Detail)
}
