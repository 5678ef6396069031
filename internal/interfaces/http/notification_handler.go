package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/notification"
)

// NotificationHandler envíos por WhatsApp.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// SendReceipt godoc
// @Summary      Enviar recibo por WhatsApp
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SendReceiptRequest  true  "transaction_id, phone"
// @Success      200   {object}  dto.MessageResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/notifications/send-receipt [post]
func (h *NotificationHandler) SendReceipt(c *fiber.Ctx) error {
	var in dto.SendReceiptRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.SendReceipt(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "recibo enviado"})
}

// CheckExpiring godoc
// @Summary      Encolar recordatorios de membresías por vencer
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CheckExpiringResponse
// @Router       /api/notifications/check-expiring [post]
func (h *NotificationHandler) CheckExpiring(c *fiber.Ctx) error {
	n, err := h.uc.CheckExpiring(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CheckExpiringResponse{Sent: n})
}

// Status godoc
// @Summary      Estado del puente de WhatsApp
// @Tags         whatsapp
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MessengerStatusResponse
// @Router       /api/whatsapp/status [get]
func (h *NotificationHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status(c.UserContext()))
}

// SendTest godoc
// @Summary      Mensaje de prueba
// @Tags         whatsapp
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SendTestRequest  true  "phone, message"
// @Success      200   {object}  dto.MessageResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/whatsapp/send-test [post]
func (h *NotificationHandler) SendTest(c *fiber.Ctx) error {
	var in dto.SendTestRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.SendTest(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "mensaje enviado"})
}
