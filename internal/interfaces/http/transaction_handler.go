package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/otopia-pos/internal/application/billing"
	"github.com/jhoicas/otopia-pos/internal/application/dto"
)

// HeaderIdempotencyKey llave opcional para reintentos seguros de POST /transactions.
const HeaderIdempotencyKey = "Idempotency-Key"

// TransactionHandler ventas.
type TransactionHandler struct {
	uc *billing.TransactionUseCase
}

// NewTransactionHandler construye el handler de ventas.
func NewTransactionHandler(uc *billing.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Requiere turno abierto del kasir. Con Idempotency-Key, un reintento devuelve la venta original con 200.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header  string                        false  "Llave de reintento"
// @Param        body             body    dto.CreateTransactionRequest  true   "items, payment_method, payment_received"
// @Success      201  {object}  dto.TransactionResponse
// @Success      200  {object}  dto.TransactionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      412  {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, replayed, err := h.uc.Create(c.UserContext(), currentUser(c), in, c.Get(HeaderIdempotencyKey))
	if err != nil {
		return writeError(c, err)
	}
	if replayed {
		c.Set("Idempotent-Replayed", "true")
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Un kasir solo ve las propias.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        from      query  string  false  "YYYY-MM-DD o RFC3339"
// @Param        to        query  string  false  "YYYY-MM-DD (inclusive) o RFC3339"
// @Param        shift_id  query  string  false  "Filtrar por turno"
// @Param        limit     query  int     false  "Máximo de filas"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var q dto.TransactionListQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, badRequest("INVALID_QUERY", err.Error()))
	}
	list, err := h.uc.List(c.UserContext(), currentActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Today godoc
// @Summary      Ventas de hoy
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions/today [get]
func (h *TransactionHandler) Today(c *fiber.Ctx) error {
	list, err := h.uc.Today(c.UserContext(), currentActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Detail godoc
// @Summary      Detalle de venta
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), currentActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo en PDF
// @Tags         transactions
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {file}  binary
// @Router       /api/transactions/{id}/receipt.pdf [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	data, filename, err := h.uc.ReceiptPDF(c.UserContext(), currentActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

// Export godoc
// @Summary      Ventas del rango en Excel
// @Tags         transactions
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        from  query  string  false  "YYYY-MM-DD (por defecto, inicio de mes)"
// @Param        to    query  string  false  "YYYY-MM-DD (por defecto, hoy)"
// @Success      200  {file}  binary
// @Router       /api/transactions/export [get]
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.Export(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, xlsxMIME, filename, data)
}
