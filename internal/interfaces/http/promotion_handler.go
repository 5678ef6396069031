package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
)

// PromotionHandler códigos promocionales.
type PromotionHandler struct {
	uc *usecase.PromotionUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PromotionRequest  true  "Promoción"
// @Success      201   {object}  dto.PromotionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/promotions [post]
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in dto.PromotionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar promociones
// @Tags         promotions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PromotionResponse
// @Router       /api/promotions [get]
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Obtener promoción
// @Tags         promotions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Promotion ID"
// @Success      200  {object}  dto.PromotionResponse
// @Router       /api/promotions/{id} [get]
func (h *PromotionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar promoción
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Promotion ID"
// @Param        body  body  dto.PromotionRequest  true  "Promoción"
// @Success      200   {object}  dto.PromotionResponse
// @Router       /api/promotions/{id} [put]
func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	var in dto.PromotionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar promoción
// @Tags         promotions
// @Security     BearerAuth
// @Param        id  path  string  true  "Promotion ID"
// @Success      204
// @Router       /api/promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate godoc
// @Summary      Validar código y calcular descuento
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ValidatePromotionRequest  true  "code, subtotal"
// @Success      200   {object}  dto.ValidatePromotionResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/promotions/validate [post]
func (h *PromotionHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidatePromotionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Validate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Redeem godoc
// @Summary      Aplicar código (consume un uso)
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ValidatePromotionRequest  true  "code, subtotal"
// @Success      200   {object}  dto.ValidatePromotionResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/promotions/redeem [post]
func (h *PromotionHandler) Redeem(c *fiber.Ctx) error {
	var in dto.ValidatePromotionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Redeem(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
