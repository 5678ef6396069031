package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/otopia-pos/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve las cifras del tablero.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (ventas de hoy y del mes, membresías activas y por
// vencer, ítems bajo mínimo, desempeño por kasir del mes).
// Las fechas se calculan en el servidor con la zona horaria configurada.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
