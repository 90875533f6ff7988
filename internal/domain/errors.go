package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateCode      = errors.New("código de producto duplicado en la bodega")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidTransfer    = errors.New("traslado inválido")
	ErrValidation         = errors.New("validación fallida")
	ErrPersistence        = errors.New("error de persistencia")
)

// StockError detalla una salida o traslado rechazado por stock insuficiente.
// errors.Is(err, ErrInsufficientStock) == true.
type StockError struct {
	Code      string // código del producto
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("la cantidad solicitada (%d) excede el stock disponible (%d) para %s",
		e.Requested, e.Available, e.Code)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError detalla el rechazo de una fila en la importación masiva.
// Row numera las filas de datos desde 1 (el encabezado no cuenta).
// errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("fila %d: campo %s: %s", e.Row, e.Field, e.Reason)
	}
	return fmt.Sprintf("fila %d: %s", e.Row, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
