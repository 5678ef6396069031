package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/shift"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ShiftHandler turnos y caja.
type ShiftHandler struct {
	uc *shift.UseCase
}

// NewShiftHandler construye el handler de turnos.
func NewShiftHandler(uc *shift.UseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir turno
// @Description  Un kasir solo abre su propio turno; owner/manager pueden abrirlo para otro.
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.OpenShiftRequest  true  "kasir_id, opening_balance, denominaciones"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts/open [post]
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenShiftRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Open(c.UserContext(), currentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddCashMovement godoc
// @Summary      Movimiento de caja chica
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "Shift ID"
// @Param        body  body  dto.CashMovementRequest  true  "type (in|out), amount, description"
// @Success      201   {object}  dto.PettyCashLogResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/cash-movements [post]
func (h *ShiftHandler) AddCashMovement(c *fiber.Ctx) error {
	var in dto.CashMovementRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AddCashMovement(c.UserContext(), currentUser(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar turno
// @Description  Calcula el efectivo esperado y la diferencia contra el conteo físico.
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "Shift ID"
// @Param        body  body  dto.CloseShiftRequest  true  "closing_balance, denominaciones"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/close [post]
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseShiftRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Close(c.UserContext(), currentUser(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del turno
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Shift ID"
// @Success      200  {object}  dto.ShiftSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id}/summary [get]
func (h *ShiftHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), currentUser(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Turno abierto de un kasir
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        kasir_id  path  string  true  "Kasir ID"
// @Success      200  {object}  dto.CurrentShiftResponse
// @Router       /api/shifts/current/{kasir_id} [get]
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), c.Params("kasir_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar turnos
// @Description  Un kasir solo ve sus propios turnos.
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        kasir_id  query  string  false  "Filtrar por kasir"
// @Param        status    query  string  false  "open|closed"
// @Param        limit     query  int     false  "Máximo de filas"
// @Success      200  {array}  dto.ShiftResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), currentUser(c), c.Query("kasir_id"), c.Query("status"), c.QueryInt("limit", 50))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Details godoc
// @Summary      Detalle del turno con ventas y caja chica
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Shift ID"
// @Success      200  {object}  dto.ShiftDetailsResponse
// @Router       /api/shifts/{id}/details [get]
func (h *ShiftHandler) Details(c *fiber.Ctx) error {
	out, err := h.uc.Details(c.UserContext(), currentUser(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Reporte del turno en Excel
// @Tags         shifts
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id  path  string  true  "Shift ID"
// @Success      200  {file}  binary
// @Router       /api/shifts/{id}/export [get]
func (h *ShiftHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.Export(c.UserContext(), currentUser(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, xlsxMIME, filename, data)
}

func sendFile(c *fiber.Ctx, mime, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
