package domain

import (
	"errors"
	"fmt"
)

// Taxonomía de errores de dominio (sin dependencias externas).
// La capa HTTP traduce cada familia a un código de estado con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrFailedPrecondition = errors.New("precondición no cumplida")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrUpstream           = errors.New("servicio externo no disponible")
)

// Errores específicos; cada uno envuelve una familia de la taxonomía.
var (
	ErrUsernameTaken        = fmt.Errorf("%w: el usuario ya existe", ErrConflict)
	ErrDuplicate            = fmt.Errorf("%w: recurso duplicado", ErrConflict)
	ErrShiftAlreadyOpen     = fmt.Errorf("%w: el kasir ya tiene un turno abierto", ErrConflict)
	ErrShiftClosed          = fmt.Errorf("%w: el turno está cerrado", ErrFailedPrecondition)
	ErrNoOpenShift          = fmt.Errorf("%w: no hay turno abierto, abra un turno primero", ErrFailedPrecondition)
	ErrInsufficientStock    = fmt.Errorf("%w: stock insuficiente", ErrFailedPrecondition)
	ErrNegativeStock        = fmt.Errorf("%w: el ajuste dejaría el stock en negativo", ErrInvalidInput)
	ErrInsufficientPayment  = fmt.Errorf("%w: el pago recibido es menor que el total", ErrInvalidInput)
	ErrNoEligibleMembership = fmt.Errorf("%w: no hay membresía activa elegible", ErrFailedPrecondition)
	ErrMembershipUsedToday  = fmt.Errorf("%w: la membresía ya se usó hoy", ErrFailedPrecondition)
	ErrPromotionNotStarted  = fmt.Errorf("%w: la promoción aún no inicia", ErrFailedPrecondition)
	ErrPromotionExpired     = fmt.Errorf("%w: la promoción expiró", ErrFailedPrecondition)
	ErrPromotionExhausted   = fmt.Errorf("%w: la promoción alcanzó su límite de uso", ErrFailedPrecondition)
	ErrBelowMinPurchase     = fmt.Errorf("%w: el subtotal no alcanza la compra mínima", ErrInvalidInput)
	ErrNotificationFailed   = fmt.Errorf("%w: no se pudo enviar la notificación", ErrUpstream)
	ErrInProgress           = fmt.Errorf("%w: la solicitud con esa llave de idempotencia está en proceso", ErrConflict)
)
