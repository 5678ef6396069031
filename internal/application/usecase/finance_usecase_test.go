package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

var owner = &entity.User{ID: "u-owner", FullName: "Pak Owner", Role: entity.RoleOwner}

func TestCreatePayout_RegistraTambienElGasto(t *testing.T) {
	store := memory.New().Repositories()
	ctx := context.Background()
	require.NoError(t, store.Users.Create(ctx, &entity.User{ID: "u-tek", Username: "tek", FullName: "Joko", Role: entity.RoleTeknisi, IsActive: true}))
	uc := usecase.NewFinanceUseCase(store)

	p, err := uc.CreatePayout(ctx, owner, dto.PayoutRequest{UserID: "u-tek", Amount: n("250000")})
	require.NoError(t, err)
	assert.Equal(t, "Joko", p.UserName)
	assert.Equal(t, "Pak Owner", p.CreatedBy)

	expenses, err := uc.ListExpenses(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, entity.PayoutExpenseCategory, expenses[0].Category)
	assert.True(t, expenses[0].Amount.Equal(n("250000")))

	payouts, err := uc.ListPayouts(ctx, "u-tek")
	require.NoError(t, err)
	assert.Len(t, payouts, 1)
}

func TestCreatePayout_UsuarioInexistenteNoDejaRastro(t *testing.T) {
	store := memory.New().Repositories()
	ctx := context.Background()
	uc := usecase.NewFinanceUseCase(store)

	_, err := uc.CreatePayout(ctx, owner, dto.PayoutRequest{UserID: "nadie", Amount: n("1000")})
	require.ErrorIs(t, err, domain.ErrNotFound)

	expenses, err := uc.ListExpenses(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenses_RangoYBorrado(t *testing.T) {
	store := memory.New().Repositories()
	ctx := context.Background()
	uc := usecase.NewFinanceUseCase(store)

	march := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	e1, err := uc.CreateExpense(ctx, owner, dto.ExpenseRequest{Date: &march, Category: "Listrik", Amount: n("400000")})
	require.NoError(t, err)
	_, err = uc.CreateExpense(ctx, owner, dto.ExpenseRequest{Date: &april, Category: "Air", Amount: n("90000")})
	require.NoError(t, err)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	list, err := uc.ListExpenses(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Listrik", list[0].Category)

	require.NoError(t, uc.DeleteExpense(ctx, e1.ID))
	assert.ErrorIs(t, uc.DeleteExpense(ctx, e1.ID), domain.ErrNotFound)
}

func TestLanding_DefaultsYGuardado(t *testing.T) {
	store := memory.New().Repositories()
	ctx := context.Background()
	uc := usecase.NewLandingUseCase(store.Landing)

	cfg, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLandingConfig().HeroTitle2, cfg.HeroTitle2)

	cfg.HeroTitle1 = "Kilau"
	_, err = uc.Save(ctx, cfg)
	require.NoError(t, err)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Kilau", got.HeroTitle1)
	assert.False(t, got.UpdatedAt.IsZero())
}
