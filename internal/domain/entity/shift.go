package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un turno de caja.
const (
	ShiftStatusOpen   = "OPEN"
	ShiftStatusClosed = "CLOSED"
)

// Shift turno de un operador: delimita la contabilidad de caja entre apertura
// y cierre. ExpectedClosingCash se calcula desde las transacciones de caja al
// cerrar; ActualClosingCash es el conteo físico declarado.
type Shift struct {
	ID                  string
	OperatorID          string
	StartTime           time.Time
	EndTime             *time.Time
	OpeningCash         decimal.Decimal
	ExpectedClosingCash *decimal.Decimal
	ActualClosingCash   *decimal.Decimal
	Status              string
}
