package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

func TestInstrumentos(t *testing.T) {
	p := New()
	p.TransactionRecorded(entity.PaymentCash, decimal.NewFromInt(50000))
	p.TransactionRecorded(entity.PaymentCash, decimal.NewFromInt(25000))
	p.TransactionRecorded(entity.PaymentSubscription, decimal.Zero)
	p.NotificationDelivered("receipt", nil)
	p.NotificationDelivered("receipt", errors.New("bridge caído"))
	p.ShiftClosed("Budi", decimal.NewFromInt(-2000))

	assert.Equal(t, 2.0, testutil.ToFloat64(p.transactions.WithLabelValues("cash")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.transactions.WithLabelValues("subscription")))
	assert.Equal(t, 75000.0, testutil.ToFloat64(p.salesAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.notifications.WithLabelValues("receipt", "error")))
	assert.Equal(t, -2000.0, testutil.ToFloat64(p.shiftVariance.WithLabelValues("Budi")))
}

func TestHandler_ExponeMetricas(t *testing.T) {
	p := New()
	p.ObserveHTTP("GET", "/api/health", 200, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pos_http_request_duration_seconds")
}
