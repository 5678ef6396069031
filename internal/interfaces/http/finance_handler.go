package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
)

// FinanceHandler gastos, pagos de comisión y configuración del sitio público.
type FinanceHandler struct {
	finance *usecase.FinanceUseCase
	landing *usecase.LandingUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(finance *usecase.FinanceUseCase, landing *usecase.LandingUseCase) *FinanceHandler {
	return &FinanceHandler{finance: finance, landing: landing}
}

// CreateExpense godoc
// @Summary      Registrar gasto
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ExpenseRequest  true  "category, amount, description, date"
// @Success      201   {object}  dto.ExpenseResponse
// @Router       /api/expenses [post]
func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.finance.CreateExpense(c.UserContext(), currentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses godoc
// @Summary      Listar gastos
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *FinanceHandler) ListExpenses(c *fiber.Ctx) error {
	from, err := dateQuery(c, "from", false)
	if err != nil {
		return writeError(c, err)
	}
	to, err := dateQuery(c, "to", true)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.finance.ListExpenses(c.UserContext(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// DeleteExpense godoc
// @Summary      Eliminar gasto
// @Tags         finance
// @Security     BearerAuth
// @Param        id  path  string  true  "Expense ID"
// @Success      204
// @Router       /api/expenses/{id} [delete]
func (h *FinanceHandler) DeleteExpense(c *fiber.Ctx) error {
	if err := h.finance.DeleteExpense(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePayout godoc
// @Summary      Pagar comisiones
// @Description  Registra también el gasto "Gaji & Komisi" en la misma transacción.
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PayoutRequest  true  "user_id, amount, periodo"
// @Success      201   {object}  dto.PayoutResponse
// @Router       /api/payouts [post]
func (h *FinanceHandler) CreatePayout(c *fiber.Ctx) error {
	var in dto.PayoutRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.finance.CreatePayout(c.UserContext(), currentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayouts godoc
// @Summary      Listar pagos de comisión
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query  string  false  "Filtrar por usuario"
// @Success      200  {array}  dto.PayoutResponse
// @Router       /api/payouts [get]
func (h *FinanceHandler) ListPayouts(c *fiber.Ctx) error {
	list, err := h.finance.ListPayouts(c.UserContext(), c.Query("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetLanding godoc
// @Summary      Configuración del sitio público
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.LandingConfigDTO
// @Router       /api/public/landing-config [get]
func (h *FinanceHandler) GetLanding(c *fiber.Ctx) error {
	out, err := h.landing.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveLanding godoc
// @Summary      Guardar configuración del sitio público
// @Tags         landing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LandingConfigDTO  true  "Configuración"
// @Success      200   {object}  dto.LandingConfigDTO
// @Router       /api/landing-config [put]
func (h *FinanceHandler) SaveLanding(c *fiber.Ctx) error {
	var in dto.LandingConfigDTO
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.landing.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// dateQuery lee una fecha YYYY-MM-DD en UTC. endOfDay devuelve el inicio del día
// siguiente para usarlo como cota exclusiva.
func dateQuery(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, badRequest("INVALID_QUERY", key+": se espera YYYY-MM-DD")
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
