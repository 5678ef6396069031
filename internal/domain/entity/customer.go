package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer cliente del car wash. Phone funciona como llave de búsqueda en varios flujos.
// TotalVisits y TotalSpending solo crecen, y solo por transacciones.
type Customer struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	VehicleNumber string
	VehicleType   string
	TotalVisits   int
	TotalSpending decimal.Decimal
	JoinDate      time.Time
	UpdatedAt     time.Time
}
