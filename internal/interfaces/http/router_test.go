package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/otopia-pos/internal/application/analytics"
	"github.com/jhoicas/otopia-pos/internal/application/auth"
	"github.com/jhoicas/otopia-pos/internal/application/billing"
	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/inventory"
	"github.com/jhoicas/otopia-pos/internal/application/membership"
	"github.com/jhoicas/otopia-pos/internal/application/notification"
	"github.com/jhoicas/otopia-pos/internal/application/shift"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	apphttp "github.com/jhoicas/otopia-pos/internal/interfaces/http"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/kv"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/metrics"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/report"
)

type stubMessenger struct{ sent []string }

func (m *stubMessenger) Send(_ context.Context, phone, _ string) error {
	m.sent = append(m.sent, phone)
	return nil
}
func (m *stubMessenger) Health(context.Context) error { return nil }

// newServer arma la API completa sobre el store en memoria.
func newServer(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.New().Repositories()
	log := zerolog.Nop()
	prom := metrics.New()
	exporter := report.NewXLSXExporter()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(log, prom), apphttp.RequestTimeout(5*time.Second))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users, store.Outlets, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:      usecase.NewUserUseCase(store.Users, store.Outlets, store.Shifts),
		OutletUC:    usecase.NewOutletUseCase(store),
		CatalogUC:   usecase.NewCatalogUseCase(store),
		PromotionUC: usecase.NewPromotionUseCase(store),
		FinanceUC:   usecase.NewFinanceUseCase(store),
		LandingUC:   usecase.NewLandingUseCase(store.Landing),
		ShiftUC:     shift.NewUseCase(store, exporter, prom, log),
		CustomerUC:  billing.NewCustomerUseCase(store),
		TransactionUC: billing.NewTransactionUseCase(store, billing.Deps{
			Idempotency: kv.NewLocalIdempotency(),
			Receipts:    pdf.NewReceiptGenerator(),
			Exporter:    exporter,
			Metrics:     prom,
		}, billing.Config{BusinessName: "Otopia Car Wash"}, log),
		MembershipUC:   membership.NewUseCase(store, log),
		InventoryUC:    inventory.NewUseCase(store),
		DashboardUC:    appanalytics.NewDashboardUseCase(store.Analytics, kv.NewLocalCache(), time.UTC, log),
		NotificationUC: notification.NewUseCase(store, &stubMessenger{}, kv.NewChanQueue(8), prom, notification.Config{Enabled: true, BusinessName: "Otopia"}, log),
		Metrics:        prom.Handler(),
		JWTSecret:      testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any, headers ...string) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// signup registra y autentica un usuario; devuelve su token.
func signup(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()
	status, raw := call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": username, "password": "rahasia123", "full_name": username, "role": role,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	status, raw = call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username, "password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	return decode[dto.LoginResponse](t, raw).AccessToken
}

func TestHealthYMetricsSonPublicos(t *testing.T) {
	app := newServer(t)

	status, raw := call(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "ok")

	status, raw = call(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "pos_http_request_duration_seconds")
}

func TestRutasProtegidasSinToken(t *testing.T) {
	app := newServer(t)
	status, raw := call(t, app, http.MethodGet, "/api/transactions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", decode[dto.ErrorResponse](t, raw).Code)
}

func TestRegistro_UsuarioDuplicadoYValidacion(t *testing.T) {
	app := newServer(t)
	signup(t, app, "budi", "kasir")

	status, raw := call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "budi", "password": "rahasia123", "full_name": "Budi 2", "role": "kasir",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "USERNAME_TAKEN", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = call(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "x", "password": "1", "full_name": "X", "role": "raja",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "budi", "password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, raw).Code)
}

func TestMe_YRolesDeGestion(t *testing.T) {
	app := newServer(t)
	owner := signup(t, app, "owner", "owner")
	kasir := signup(t, app, "kasir", "kasir")

	status, raw := call(t, app, http.MethodGet, "/api/auth/me", kasir, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "kasir", decode[dto.UserResponse](t, raw).Username)

	status, _ = call(t, app, http.MethodGet, "/api/users", kasir, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw = call(t, app, http.MethodGet, "/api/users", owner, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.UserResponse](t, raw), 2)

	status, raw = call(t, app, http.MethodGet, "/api/users/staff", kasir, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.UserResponse](t, raw), 1)
}

func TestUsuarioDesactivadoPierdeAcceso(t *testing.T) {
	app := newServer(t)
	owner := signup(t, app, "owner", "owner")
	kasir := signup(t, app, "kasir", "kasir")

	_, raw := call(t, app, http.MethodGet, "/api/auth/me", kasir, nil)
	kasirID := decode[dto.UserResponse](t, raw).ID

	status, _ := call(t, app, http.MethodDelete, "/api/users/"+kasirID, owner, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, app, http.MethodGet, "/api/auth/me", kasir, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestVenta_TurnoIdempotenciaYRecibo(t *testing.T) {
	app := newServer(t)
	owner := signup(t, app, "owner", "owner")
	kasir := signup(t, app, "kasir", "kasir")

	status, raw := call(t, app, http.MethodPost, "/api/services", owner, fiber.Map{
		"name": "Cuci Mobil", "price": 50000, "commission_rate": 10,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	svc := decode[dto.ServiceResponse](t, raw)

	sale := fiber.Map{
		"items":            []fiber.Map{{"service_id": svc.ID, "name": svc.Name, "quantity": 1, "price": 50000}},
		"payment_method":   "cash",
		"payment_received": 100000,
	}

	// Sin turno abierto.
	status, raw = call(t, app, http.MethodPost, "/api/transactions", kasir, sale)
	assert.Equal(t, http.StatusPreconditionFailed, status)
	assert.Equal(t, "NO_OPEN_SHIFT", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = call(t, app, http.MethodPost, "/api/shifts/open", kasir, fiber.Map{"opening_balance": 200000})
	require.Equal(t, http.StatusCreated, status, string(raw))
	sh := decode[dto.ShiftResponse](t, raw)

	status, raw = call(t, app, http.MethodPost, "/api/shifts/open", kasir, fiber.Map{"opening_balance": 0})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "SHIFT_ALREADY_OPEN", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = call(t, app, http.MethodPost, "/api/transactions", kasir, sale, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusCreated, status, string(raw))
	first := decode[dto.TransactionResponse](t, raw)
	assert.Equal(t, sh.ID, first.ShiftID)
	assert.True(t, first.ChangeAmount.Equal(decimal.NewFromInt(50000)), first.ChangeAmount.String())
	assert.True(t, first.TotalCommission.Equal(decimal.NewFromInt(5000)), first.TotalCommission.String())

	status, raw = call(t, app, http.MethodPost, "/api/transactions", kasir, sale, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, first.ID, decode[dto.TransactionResponse](t, raw).ID)

	status, raw = call(t, app, http.MethodGet, "/api/transactions/today", kasir, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.TransactionResponse](t, raw), 1)

	status, raw = call(t, app, http.MethodGet, "/api/transactions/"+first.ID+"/receipt.pdf", kasir, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	// El export es solo para gestión.
	status, _ = call(t, app, http.MethodGet, "/api/transactions/export", kasir, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, raw = call(t, app, http.MethodGet, "/api/transactions/export", owner, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(raw, []byte("PK")))
}

func TestVenta_PagoInsuficienteYCuerpoInvalido(t *testing.T) {
	app := newServer(t)
	owner := signup(t, app, "owner", "owner")
	kasir := signup(t, app, "kasir", "kasir")

	_, raw := call(t, app, http.MethodPost, "/api/services", owner, fiber.Map{"name": "Poles", "price": 75000})
	svc := decode[dto.ServiceResponse](t, raw)
	status, _ := call(t, app, http.MethodPost, "/api/shifts/open", kasir, fiber.Map{"opening_balance": 0})
	require.Equal(t, http.StatusCreated, status)

	status, raw = call(t, app, http.MethodPost, "/api/transactions", kasir, fiber.Map{
		"items":            []fiber.Map{{"service_id": svc.ID, "name": svc.Name, "quantity": 1, "price": 75000}},
		"payment_method":   "cash",
		"payment_received": 50000,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INSUFFICIENT_PAYMENT", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = call(t, app, http.MethodPost, "/api/transactions", kasir, fiber.Map{
		"items": []fiber.Map{}, "payment_method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)
}

func TestCierreDeTurno_YExport(t *testing.T) {
	app := newServer(t)
	kasir := signup(t, app, "kasir", "kasir")

	_, raw := call(t, app, http.MethodPost, "/api/shifts/open", kasir, fiber.Map{"opening_balance": 100000})
	sh := decode[dto.ShiftResponse](t, raw)

	status, raw := call(t, app, http.MethodPost, "/api/shifts/"+sh.ID+"/cash-movements", kasir, fiber.Map{
		"amount": 20000, "category": "Operasional", "description": "sabun",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = call(t, app, http.MethodPost, "/api/shifts/"+sh.ID+"/close", kasir, fiber.Map{"closing_balance": 80000})
	require.Equal(t, http.StatusOK, status, string(raw))
	closed := decode[dto.ShiftResponse](t, raw)
	assert.Equal(t, "closed", closed.Status)
	require.NotNil(t, closed.Variance)
	assert.True(t, closed.Variance.IsZero(), closed.Variance.String())

	status, raw = call(t, app, http.MethodPost, "/api/shifts/"+sh.ID+"/cash-movements", kasir, fiber.Map{
		"amount": 1000, "category": "Operasional",
	})
	assert.Equal(t, http.StatusPreconditionFailed, status)
	assert.Equal(t, "SHIFT_CLOSED", decode[dto.ErrorResponse](t, raw).Code)

	status, raw = call(t, app, http.MethodGet, "/api/shifts/"+sh.ID+"/export", kasir, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(raw, []byte("PK")))
}

func TestPublico_ServiciosYLanding(t *testing.T) {
	app := newServer(t)
	owner := signup(t, app, "owner", "owner")
	_, _ = call(t, app, http.MethodPost, "/api/services", owner, fiber.Map{"name": "Cuci Motor", "price": 20000})

	status, raw := call(t, app, http.MethodGet, "/api/public/services", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]dto.ServiceResponse](t, raw), 1)

	status, _ = call(t, app, http.MethodGet, "/api/public/landing-config", "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, raw = call(t, app, http.MethodPost, "/api/public/check-membership", "", fiber.Map{"phone": "0800"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}
