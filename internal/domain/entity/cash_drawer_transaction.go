package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de caja.
const (
	DrawerTxSaleCash     = "SALE_CASH"     // efectivo neto recibido por una venta
	DrawerTxOpeningFloat = "OPENING_FLOAT" // fondo de apertura
	DrawerTxPayout       = "PAYOUT"        // retiro (gasto, pago a proveedor)
	DrawerTxDrop         = "DROP"          // depósito de efectivo fuera de caja
)

// CashDrawerTransaction movimiento de efectivo dentro de un turno. El orquestador
// de checkout añade uno por el efectivo neto cuando la venta liquida en CASH y
// hay turno activo; su fallo no deshace la venta.
type CashDrawerTransaction struct {
	ID          string
	ShiftID     string
	Kind        string
	Amount      decimal.Decimal // positivo entra a caja, negativo sale
	ReferenceID string          // "SALE-<id>" cuando la origina una venta
	CreatedAt   time.Time
}
