package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/otopia-pos/internal/application/billing"
	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/membership"
)

// CustomerHandler clientes y membresías.
type CustomerHandler struct {
	customers   *billing.CustomerUseCase
	memberships *membership.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(customers *billing.CustomerUseCase, memberships *membership.UseCase) *CustomerHandler {
	return &CustomerHandler{customers: customers, memberships: memberships}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CustomerRequest  true  "name, phone, vehículo"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.customers.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "Nombre, teléfono o placa"
// @Param        limit   query  int     false  "Límite (1-200)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return writeError(c, badRequest("INVALID_QUERY", err.Error()))
	}
	if err := check(&page); err != nil {
		return writeError(c, err)
	}
	list, err := h.customers.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer ID"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	out, err := h.customers.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "Customer ID"
// @Param        body  body  dto.CustomerRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.CustomerResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.customers.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         customers
// @Security     BearerAuth
// @Param        id  path  string  true  "Customer ID"
// @Success      204
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transactions godoc
// @Summary      Historial de ventas del cliente
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   string  true   "Customer ID"
// @Param        limit  query  int     false  "Máximo de filas"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/customers/{id}/transactions [get]
func (h *CustomerHandler) Transactions(c *fiber.Ctx) error {
	list, err := h.customers.Transactions(c.UserContext(), c.Params("id"), c.QueryInt("limit", 50))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ── Membresías ───────────────────────────────────────────────────────────────

// CreateMembership godoc
// @Summary      Vender membresía
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MembershipRequest  true  "customer_id, membership_type, price"
// @Success      201   {object}  dto.MembershipResponse
// @Router       /api/memberships [post]
func (h *CustomerHandler) CreateMembership(c *fiber.Ctx) error {
	var in dto.MembershipRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.memberships.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMemberships godoc
// @Summary      Listar membresías
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.MembershipResponse
// @Router       /api/memberships [get]
func (h *CustomerHandler) ListMemberships(c *fiber.Ctx) error {
	var (
		list []dto.MembershipResponse
		err  error
	)
	if customerID := c.Query("customer_id"); customerID != "" {
		list, err = h.memberships.ListByCustomer(c.UserContext(), customerID)
	} else {
		list, err = h.memberships.List(c.UserContext())
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetMembership godoc
// @Summary      Membresía con su historial de canjes
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Membership ID"
// @Success      200  {object}  dto.MembershipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/memberships/{id} [get]
func (h *CustomerHandler) GetMembership(c *fiber.Ctx) error {
	out, err := h.memberships.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExtendMembership godoc
// @Summary      Extender membresía
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "Membership ID"
// @Param        body  body  dto.ExtendMembershipRequest  true  "days"
// @Success      200   {object}  dto.MembershipResponse
// @Router       /api/memberships/{id}/extend [post]
func (h *CustomerHandler) ExtendMembership(c *fiber.Ctx) error {
	var in dto.ExtendMembershipRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.memberships.Extend(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMembership godoc
// @Summary      Eliminar membresía y sus canjes
// @Tags         memberships
// @Security     BearerAuth
// @Param        id  path  string  true  "Membership ID"
// @Success      204
// @Router       /api/memberships/{id} [delete]
func (h *CustomerHandler) DeleteMembership(c *fiber.Ctx) error {
	if err := h.memberships.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UseMembership godoc
// @Summary      Canjear membresía
// @Description  Un canje por día calendario; descuenta el BOM del servicio.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UseMembershipRequest  true  "phone, service_id"
// @Success      200   {object}  dto.UseMembershipResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/memberships/use [post]
func (h *CustomerHandler) UseMembership(c *fiber.Ctx) error {
	var in dto.UseMembershipRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.memberships.Use(c.UserContext(), currentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CheckMembership godoc
// @Summary      Consulta pública de membresía por teléfono
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckMembershipRequest  true  "phone"
// @Success      200   {object}  dto.CheckMembershipResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/check-membership [post]
func (h *CustomerHandler) CheckMembership(c *fiber.Ctx) error {
	var in dto.CheckMembershipRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.memberships.Check(c.UserContext(), in.Phone)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
