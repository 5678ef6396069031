package membership

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

var kasir = &entity.User{ID: "k-1", FullName: "Budi", Role: entity.RoleKasir}

func n(v string) decimal.Decimal { return decimal.RequireFromString(v) }

type fixture struct {
	ctx   context.Context
	store repository.Store
	uc    *UseCase
	clock time.Time
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:   context.Background(),
		store: memory.New().Repositories(),
		clock: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
	f.uc = NewUseCase(f.store, zerolog.Nop())
	f.uc.now = func() time.Time { return f.clock }

	require.NoError(t, f.store.Customers.Create(f.ctx, &entity.Customer{ID: "c-1", Name: "Andi", Phone: "0811"}))
	require.NoError(t, f.store.Inventory.Create(f.ctx, &entity.InventoryItem{
		ID: "inv-1", SKU: "SHP", Name: "Shampoo", CurrentStock: n("5"), IsActive: true,
	}))
	require.NoError(t, f.store.Services.Create(f.ctx, &entity.Service{
		ID: "svc-1", Name: "Cuci Mobil", Price: n("50000"), IsActive: true,
		BOM: []entity.BOMLine{{InventoryID: "inv-1", Quantity: n("0.5")}},
	}))
	return f
}

func (f *fixture) create(t *testing.T, mtype string) *dto.MembershipResponse {
	t.Helper()
	m, err := f.uc.Create(f.ctx, dto.MembershipRequest{CustomerID: "c-1", MembershipType: mtype, Price: n("300000")})
	require.NoError(t, err)
	return m
}

func TestCreate_FinSegunPlan(t *testing.T) {
	f := setup(t)
	m := f.create(t, "monthly")
	assert.Equal(t, f.clock.AddDate(0, 0, 30), m.EndDate)
	assert.Equal(t, string(entity.MembershipActive), m.Status)
	assert.Equal(t, 30, m.DaysRemaining)

	_, err := f.uc.Create(f.ctx, dto.MembershipRequest{CustomerID: "nadie", MembershipType: "monthly"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUse_UnCanjePorDiaYAlDiaSiguienteOtraVez(t *testing.T) {
	f := setup(t)
	m := f.create(t, "monthly")
	req := dto.UseMembershipRequest{Phone: "0811", ServiceID: "svc-1"}

	got, err := f.uc.Use(f.ctx, kasir, req)
	require.NoError(t, err)
	assert.Equal(t, "Andi", got.CustomerName)
	assert.Equal(t, "Cuci Mobil", got.ServiceName)
	assert.Equal(t, 1, got.UsageCount)
	assert.Equal(t, 30, got.DaysRemaining)

	f.clock = f.clock.Add(10 * time.Hour)
	_, err = f.uc.Use(f.ctx, kasir, req)
	require.ErrorIs(t, err, domain.ErrMembershipUsedToday)
	assert.ErrorIs(t, err, domain.ErrFailedPrecondition)

	f.clock = time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)
	got, err = f.uc.Use(f.ctx, kasir, req)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UsageCount)

	detail, err := f.uc.Get(f.ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Usages, 2)
	assert.Equal(t, 2, detail.UsageCount)

	item, err := f.store.Inventory.GetByID(f.ctx, "inv-1")
	require.NoError(t, err)
	assert.True(t, item.CurrentStock.Equal(n("4")))
	logs, err := f.store.InventoryLogs.ListByItem(f.ctx, "inv-1", 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ReasonUsage, logs[0].Reason)
}

func TestUse_PlanRegularNuncaCanjea(t *testing.T) {
	f := setup(t)
	f.create(t, "regular")

	_, err := f.uc.Use(f.ctx, kasir, dto.UseMembershipRequest{Phone: "0811", ServiceID: "svc-1"})
	require.ErrorIs(t, err, domain.ErrNoEligibleMembership)
	assert.ErrorIs(t, err, domain.ErrFailedPrecondition)
}

func TestUse_MembresiaVencidaNoCanjea(t *testing.T) {
	f := setup(t)
	f.create(t, "monthly")
	f.clock = f.clock.AddDate(0, 0, 31)

	_, err := f.uc.Use(f.ctx, kasir, dto.UseMembershipRequest{Phone: "0811", ServiceID: "svc-1"})
	assert.ErrorIs(t, err, domain.ErrNoEligibleMembership)
}

func TestUse_TelefonoOServicioDesconocidos(t *testing.T) {
	f := setup(t)
	f.create(t, "annual")

	_, err := f.uc.Use(f.ctx, kasir, dto.UseMembershipRequest{Phone: "0999", ServiceID: "svc-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Use(f.ctx, kasir, dto.UseMembershipRequest{Phone: "0811", ServiceID: "svc-x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El fallo revierte: el canje de hoy sigue disponible.
	_, err = f.uc.Use(f.ctx, kasir, dto.UseMembershipRequest{Phone: "0811", ServiceID: "svc-1"})
	assert.NoError(t, err)
}

func TestExtend_YCheckPublico(t *testing.T) {
	f := setup(t)
	m := f.create(t, "monthly")

	ext, err := f.uc.Extend(f.ctx, m.ID, dto.ExtendMembershipRequest{Days: 10})
	require.NoError(t, err)
	assert.Equal(t, m.EndDate.AddDate(0, 0, 10), ext.EndDate)

	f.clock = f.clock.AddDate(0, 0, 35)
	check, err := f.uc.Check(f.ctx, "0811")
	require.NoError(t, err)
	assert.Equal(t, "Andi", check.CustomerName)
	require.Len(t, check.Memberships, 1)
	assert.Equal(t, string(entity.MembershipExpiringSoon), check.Memberships[0].Status)

	_, err = f.uc.Check(f.ctx, "0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExtend_VencidaSumaDesdeSuFechaDeFin(t *testing.T) {
	f := setup(t)
	m := f.create(t, "monthly")
	f.clock = f.clock.AddDate(0, 0, 40)

	ext, err := f.uc.Extend(f.ctx, m.ID, dto.ExtendMembershipRequest{Days: 5})
	require.NoError(t, err)
	assert.Equal(t, m.EndDate.AddDate(0, 0, 5), ext.EndDate)
	assert.Equal(t, string(entity.MembershipExpired), ext.Status)
}

func TestDelete_BorraCanjes(t *testing.T) {
	f := setup(t)
	m := f.create(t, "monthly")
	_, err := f.uc.Use(f.ctx, kasir, dto.UseMembershipRequest{Phone: "0811", ServiceID: "svc-1"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(f.ctx, m.ID))
	usages, err := f.store.MembershipUsages.ListByMembership(f.ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, usages)

	_, err = f.uc.Get(f.ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
