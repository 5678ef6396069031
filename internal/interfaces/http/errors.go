package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
)

// apiError error ya clasificado por la capa HTTP (cuerpo inválido, validación).
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func badRequest(code, message string) error {
	return &apiError{status: fiber.StatusBadRequest, code: code, message: message}
}

// Errores específicos con código propio; se evalúan antes que las familias.
var specificCodes = []struct {
	err  error
	code string
}{
	{domain.ErrUsernameTaken, "USERNAME_TAKEN"},
	{domain.ErrShiftAlreadyOpen, "SHIFT_ALREADY_OPEN"},
	{domain.ErrInProgress, "REQUEST_IN_PROGRESS"},
	{domain.ErrDuplicate, "DUPLICATE"},
	{domain.ErrShiftClosed, "SHIFT_CLOSED"},
	{domain.ErrNoOpenShift, "NO_OPEN_SHIFT"},
	{domain.ErrInsufficientStock, "INSUFFICIENT_STOCK"},
	{domain.ErrNegativeStock, "NEGATIVE_STOCK"},
	{domain.ErrInsufficientPayment, "INSUFFICIENT_PAYMENT"},
	{domain.ErrNoEligibleMembership, "NO_ELIGIBLE_MEMBERSHIP"},
	{domain.ErrMembershipUsedToday, "MEMBERSHIP_USED_TODAY"},
	{domain.ErrPromotionNotStarted, "PROMOTION_NOT_STARTED"},
	{domain.ErrPromotionExpired, "PROMOTION_EXPIRED"},
	{domain.ErrPromotionExhausted, "PROMOTION_EXHAUSTED"},
	{domain.ErrBelowMinPurchase, "BELOW_MIN_PURCHASE"},
	{domain.ErrNotificationFailed, "NOTIFICATION_FAILED"},
}

var familyStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrFailedPrecondition, fiber.StatusPreconditionFailed, "FAILED_PRECONDITION"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_ARGUMENT"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUpstream, fiber.StatusBadGateway, "NOTIFICATION_FAILED"},
}

// classify traduce un error a (status, code). Desconocido = 500 INTERNAL.
func classify(err error) (int, string) {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status, ae.code
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, "HTTP_ERROR"
	}
	status := fiber.StatusInternalServerError
	for _, f := range familyStatus {
		if errors.Is(err, f.err) {
			status = f.status
			break
		}
	}
	if status == fiber.StatusInternalServerError {
		return status, "INTERNAL"
	}
	for _, s := range specificCodes {
		if errors.Is(err, s.err) {
			return status, s.code
		}
	}
	for _, f := range familyStatus {
		if errors.Is(err, f.err) {
			return status, f.code
		}
	}
	return status, "INTERNAL"
}

// writeError único punto de traducción error → respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// ErrorHandler para fiber.Config: errores que escapan de los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
