// Package membership deriva el estado de las membresías a partir de su fecha de fin.
package membership

import (
	"math"
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// ExpiringDays días completos restantes con los que una membresía vigente se considera "por vencer".
const ExpiringDays = 7

// EndDate fin de vigencia según el tipo de plan.
func EndDate(start time.Time, t entity.MembershipType) time.Time {
	return start.UTC().AddDate(0, 0, t.DurationDays())
}

// Status estado derivado en lectura.
func Status(end, now time.Time) entity.MembershipStatus {
	if end.Before(now) {
		return entity.MembershipExpired
	}
	if DaysRemaining(end, now) <= ExpiringDays {
		return entity.MembershipExpiringSoon
	}
	return entity.MembershipActive
}

// DaysRemaining días completos hasta el fin (0 si ya venció).
func DaysRemaining(end, now time.Time) int {
	if end.Before(now) {
		return 0
	}
	return int(math.Floor(end.Sub(now).Hours() / 24))
}

// ExpiringCutoff límite exclusivo de fin para "por vencer": end < cutoff equivale a DaysRemaining <= ExpiringDays.
func ExpiringCutoff(now time.Time) time.Time {
	return now.Add(time.Duration(ExpiringDays+1) * 24 * time.Hour)
}

// StartOfDayUTC medianoche UTC del día de t; es el corte para "usado hoy".
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Redeemable primera membresía vigente (fin >= now) cuyo plan da derecho al lavado diario.
func Redeemable(list []*entity.Membership, now time.Time) *entity.Membership {
	for _, m := range list {
		if m == nil || m.EndDate.Before(now) {
			continue
		}
		if m.MembershipType.GrantsUnlimitedWash() {
			return m
		}
	}
	return nil
}
