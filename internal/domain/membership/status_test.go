package membership_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/membership"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func TestEndDate_DiasPorTipo(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, start.AddDate(0, 0, 30), membership.EndDate(start, entity.MembershipMonthly))
	assert.Equal(t, start.AddDate(0, 0, 90), membership.EndDate(start, entity.MembershipQuarterly))
	assert.Equal(t, start.AddDate(0, 0, 180), membership.EndDate(start, entity.MembershipBiannual))
	assert.Equal(t, start.AddDate(0, 0, 365), membership.EndDate(start, entity.MembershipAnnual))
	assert.Equal(t, start.AddDate(0, 0, 3650), membership.EndDate(start, entity.MembershipRegular))
}

func TestStatus_DerivadoDeLaFechaDeFin(t *testing.T) {
	assert.Equal(t, entity.MembershipExpired, membership.Status(now.Add(-time.Second), now))
	assert.Equal(t, entity.MembershipExpiringSoon, membership.Status(now.Add(7*24*time.Hour), now))
	assert.Equal(t, entity.MembershipExpiringSoon, membership.Status(now, now))
	assert.Equal(t, entity.MembershipActive, membership.Status(now.Add(8*24*time.Hour), now))
}

func TestStatus_PorVencerCuentaDiasCompletos(t *testing.T) {
	end := now.Add(7*24*time.Hour + 12*time.Hour)
	assert.Equal(t, 7, membership.DaysRemaining(end, now))
	assert.Equal(t, entity.MembershipExpiringSoon, membership.Status(end, now))

	almostEight := now.Add(8*24*time.Hour - time.Second)
	assert.Equal(t, entity.MembershipExpiringSoon, membership.Status(almostEight, now))
	assert.True(t, almostEight.Before(membership.ExpiringCutoff(now)))
	assert.False(t, now.Add(8*24*time.Hour).Before(membership.ExpiringCutoff(now)))
}

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 3, membership.DaysRemaining(now.Add(3*24*time.Hour+time.Hour), now))
	assert.Equal(t, 0, membership.DaysRemaining(now.Add(-time.Hour), now))
}

func TestStartOfDayUTC(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	local := time.Date(2026, 3, 11, 2, 0, 0, 0, jakarta) // 2026-03-10 19:00 UTC
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), membership.StartOfDayUTC(local))
}

func TestRedeemable_RegularNuncaEsElegible(t *testing.T) {
	list := []*entity.Membership{
		{ID: "m-regular", MembershipType: entity.MembershipRegular, EndDate: now.AddDate(10, 0, 0)},
	}
	assert.Nil(t, membership.Redeemable(list, now))
}

func TestRedeemable_SaltaVencidasYTomaLaPrimeraVigente(t *testing.T) {
	list := []*entity.Membership{
		{ID: "m-vencida", MembershipType: entity.MembershipMonthly, EndDate: now.Add(-time.Hour)},
		{ID: "m-regular", MembershipType: entity.MembershipRegular, EndDate: now.AddDate(5, 0, 0)},
		{ID: "m-anual", MembershipType: entity.MembershipAnnual, EndDate: now.AddDate(0, 6, 0)},
		{ID: "m-mensual", MembershipType: entity.MembershipMonthly, EndDate: now.AddDate(0, 0, 20)},
	}
	got := membership.Redeemable(list, now)
	require.NotNil(t, got)
	assert.Equal(t, "m-anual", got.ID)
}
