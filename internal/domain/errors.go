package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// El conjunto es cerrado: todo fallo que cruza la frontera del core se expresa
// con uno de estos valores (o con *InsufficientStockError) y se compara con
// errors.Is / errors.As.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrConstraintViolation = errors.New("violación de restricción de datos")
	ErrStorageUnavailable  = errors.New("almacenamiento no disponible")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrShiftAlreadyOpen    = errors.New("el operador ya tiene un turno abierto")
	ErrShiftClosed         = errors.New("el turno ya está cerrado")
)

// InsufficientStockError indica que una deducción no pudo satisfacerse con los
// lotes abiertos. Shortfall = solicitado - disponible. Nunca se aplica parcialmente:
// quien la recibe tiene garantía de que no se escribió nada.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

// Shortfall devuelve las unidades que faltaron para completar la deducción.
func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: faltan %d unidades", e.ProductID, e.Shortfall())
}

// IsInsufficientStock azúcar para el patrón errors.As sobre *InsufficientStockError.
func IsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
