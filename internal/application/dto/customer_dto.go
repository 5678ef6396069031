package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest body para POST/PUT /api/customers.
type CustomerRequest struct {
	Name          string `json:"name" validate:"required,max=150"`
	Phone         string `json:"phone" validate:"required,max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	VehicleNumber string `json:"vehicle_number" validate:"omitempty,max=20"`
	VehicleType   string `json:"vehicle_type" validate:"omitempty,max=50"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email,omitempty"`
	VehicleNumber string          `json:"vehicle_number,omitempty"`
	VehicleType   string          `json:"vehicle_type,omitempty"`
	TotalVisits   int             `json:"total_visits"`
	TotalSpending decimal.Decimal `json:"total_spending"`
	JoinDate      time.Time       `json:"join_date"`
}

// MembershipRequest body para POST /api/memberships.
type MembershipRequest struct {
	CustomerID     string          `json:"customer_id" validate:"required"`
	MembershipType string          `json:"membership_type" validate:"required,oneof=regular monthly quarterly biannual annual"`
	StartDate      *time.Time      `json:"start_date"` // por defecto, ahora
	Price          decimal.Decimal `json:"price" validate:"gte=0"`
	Notes          string          `json:"notes" validate:"omitempty,max=500"`
}

// ExtendMembershipRequest body para POST /api/memberships/:id/extend.
type ExtendMembershipRequest struct {
	Days int `json:"days" validate:"required,min=1,max=3650"`
}

// MembershipResponse membresía con estado derivado en lectura.
type MembershipResponse struct {
	ID             string                    `json:"id"`
	CustomerID     string                    `json:"customer_id"`
	CustomerName   string                    `json:"customer_name"`
	MembershipType string                    `json:"membership_type"`
	StartDate      time.Time                 `json:"start_date"`
	EndDate        time.Time                 `json:"end_date"`
	Status         string                    `json:"status"`
	DaysRemaining  int                       `json:"days_remaining"`
	UsageCount     int                       `json:"usage_count"`
	LastUsed       *time.Time                `json:"last_used,omitempty"`
	Price          decimal.Decimal           `json:"price"`
	Notes          string                    `json:"notes,omitempty"`
	Usages         []MembershipUsageResponse `json:"usages,omitempty"`
}

// MembershipUsageResponse un canje registrado.
type MembershipUsageResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	KasirID     string    `json:"kasir_id"`
	KasirName   string    `json:"kasir_name"`
	UsedAt      time.Time `json:"used_at"`
}

// UseMembershipRequest body para POST /api/memberships/use.
type UseMembershipRequest struct {
	Phone     string `json:"phone" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
}

// UseMembershipResponse resumen del canje.
type UseMembershipResponse struct {
	CustomerName   string `json:"customer_name"`
	ServiceName    string `json:"service_name"`
	MembershipType string `json:"membership_type"`
	DaysRemaining  int    `json:"days_remaining"`
	UsageCount     int    `json:"usage_count"`
}

// CheckMembershipRequest body para POST /api/public/check-membership.
type CheckMembershipRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// CheckMembershipResponse consulta pública por teléfono.
type CheckMembershipResponse struct {
	CustomerName string               `json:"customer_name"`
	Memberships  []MembershipResponse `json:"memberships"`
}
