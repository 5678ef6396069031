package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func staffSetup(t *testing.T) (repository.Store, *usecase.UserUseCase, *usecase.OutletUseCase) {
	t.Helper()
	store := memory.New().Repositories()
	ctx := context.Background()
	users := []*entity.User{
		{ID: "u-owner", Username: "owner", FullName: "Pak Owner", Role: entity.RoleOwner, IsActive: true},
		{ID: "u-kasir", Username: "kasir", FullName: "Budi", Role: entity.RoleKasir, IsActive: true},
		{ID: "u-tek", Username: "tek", FullName: "Joko", Role: entity.RoleTeknisi, IsActive: true},
		{ID: "u-old", Username: "old", FullName: "Lama", Role: entity.RoleKasir, IsActive: false},
	}
	for _, u := range users {
		require.NoError(t, store.Users.Create(ctx, u))
	}
	return store,
		usecase.NewUserUseCase(store.Users, store.Outlets, store.Shifts),
		usecase.NewOutletUseCase(store)
}

func TestListStaff_KasirYTeknisiActivos(t *testing.T) {
	_, users, _ := staffSetup(t)

	staff, err := users.ListStaff(context.Background())
	require.NoError(t, err)
	names := []string{}
	for _, s := range staff {
		names = append(names, s.FullName)
	}
	assert.ElementsMatch(t, []string{"Budi", "Joko"}, names)
}

func TestGetEntity_InactivoEsForbidden(t *testing.T) {
	_, users, _ := staffSetup(t)
	ctx := context.Background()

	_, err := users.GetEntity(ctx, "u-old")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = users.GetEntity(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser_Reglas(t *testing.T) {
	store, users, _ := staffSetup(t)
	ctx := context.Background()

	assert.ErrorIs(t, users.Delete(ctx, "u-owner", "u-owner"), domain.ErrForbidden)

	require.NoError(t, store.Shifts.Create(ctx, &entity.Shift{ID: "s-1", KasirID: "u-kasir", Status: entity.ShiftStatusOpen}))
	assert.ErrorIs(t, users.Delete(ctx, "u-owner", "u-kasir"), domain.ErrFailedPrecondition)

	require.NoError(t, users.Delete(ctx, "u-owner", "u-tek"))
	u, err := store.Users.GetByID(ctx, "u-tek")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestOutlet_RenombrarSincronizaUsuarios(t *testing.T) {
	store, users, outlets := staffSetup(t)
	ctx := context.Background()

	o, err := outlets.Create(ctx, dto.OutletRequest{Name: "Banyumanik"})
	require.NoError(t, err)
	_, err = users.Update(ctx, "u-kasir", dto.UpdateUserRequest{OutletID: &o.ID})
	require.NoError(t, err)

	_, err = outlets.Update(ctx, o.ID, dto.OutletRequest{Name: "Banyumanik Raya"})
	require.NoError(t, err)
	u, err := store.Users.GetByID(ctx, "u-kasir")
	require.NoError(t, err)
	assert.Equal(t, "Banyumanik Raya", u.OutletName)

	assert.ErrorIs(t, outlets.Delete(ctx, o.ID), domain.ErrFailedPrecondition)

	empty := ""
	_, err = users.Update(ctx, "u-kasir", dto.UpdateUserRequest{OutletID: &empty})
	require.NoError(t, err)
	require.NoError(t, outlets.Delete(ctx, o.ID))
}

func TestUpdateUser_RolDesconocido(t *testing.T) {
	_, users, _ := staffSetup(t)
	role := "admin"
	_, err := users.Update(context.Background(), "u-kasir", dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
