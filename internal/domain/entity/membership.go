package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipType plan de membresía.
type MembershipType string

const (
	MembershipRegular   MembershipType = "regular"
	MembershipMonthly   MembershipType = "monthly"
	MembershipQuarterly MembershipType = "quarterly"
	MembershipBiannual  MembershipType = "biannual"
	MembershipAnnual    MembershipType = "annual"
)

// Valid indica si el tipo es conocido.
func (t MembershipType) Valid() bool {
	_, ok := membershipDays[t]
	return ok
}

// DurationDays días de vigencia. "regular" usa un horizonte de ~10 años (no expira en la práctica).
func (t MembershipType) DurationDays() int {
	return membershipDays[t]
}

// GrantsUnlimitedWash solo los planes pagados por periodo dan derecho al lavado diario.
func (t MembershipType) GrantsUnlimitedWash() bool {
	return t.Valid() && t != MembershipRegular
}

var membershipDays = map[MembershipType]int{
	MembershipRegular:   3650,
	MembershipMonthly:   30,
	MembershipQuarterly: 90,
	MembershipBiannual:  180,
	MembershipAnnual:    365,
}

// MembershipStatus estado derivado en lectura; nunca se confía en un valor almacenado.
type MembershipStatus string

const (
	MembershipActive       MembershipStatus = "active"
	MembershipExpiringSoon MembershipStatus = "expiring_soon"
	MembershipExpired      MembershipStatus = "expired"
)

// Membership membresía de un cliente.
type Membership struct {
	ID             string
	CustomerID     string
	CustomerName   string
	MembershipType MembershipType
	StartDate      time.Time
	EndDate        time.Time
	UsageCount     int
	LastUsed       *time.Time
	Price          decimal.Decimal
	Notes          string
	CreatedAt      time.Time
}

// MembershipUsage registro inmutable de un canje. Máximo uno por membresía por día UTC.
type MembershipUsage struct {
	ID           string
	MembershipID string
	CustomerID   string
	ServiceID    string
	ServiceName  string
	KasirID      string
	KasirName    string
	UsedAt       time.Time
}
