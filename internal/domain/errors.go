package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInvalidType       = errors.New("tipo de movimiento inválido")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero positivo")
	ErrInvalidWarehouse  = errors.New("almacén inexistente o inactivo")
	ErrInvalidProduct    = errors.New("producto inexistente o inactivo")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidState      = errors.New("la transferencia no está en el estado requerido")
	ErrTransferNotFound  = errors.New("transferencia no encontrada")
)

// InsufficientStockError detalla un rechazo por stock insuficiente: cuánto hay
// y cuánto se pidió. Responde true a errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	StockActual        int
	CantidadSolicitada int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.StockActual, e.CantidadSolicitada)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
