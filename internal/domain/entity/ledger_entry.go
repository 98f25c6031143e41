package entity

import "time"

// MovementKind tipo de movimiento de inventario. Conjunto cerrado: todo
// productor valida con Valid() antes de escribir al ledger.
type MovementKind string

const (
	MovementPurchase   MovementKind = "PURCHASE"
	MovementSale       MovementKind = "SALE"
	MovementReturn     MovementKind = "RETURN"
	MovementAdjustment MovementKind = "ADJUSTMENT"
	MovementExpire     MovementKind = "EXPIRE"
)

// Valid verifica que el tipo pertenezca al conjunto cerrado de movimientos.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementPurchase, MovementSale, MovementReturn, MovementAdjustment, MovementExpire:
		return true
	}
	return false
}

// LedgerEntry un movimiento inmutable del ledger de inventario: delta firmado
// de cantidad sobre un producto, con referencia opcional al lote que lo originó
// (nil para ajustes crudos). Las filas nunca se actualizan ni se borran; la suma
// firmada de los deltas de un producto es la única fuente de verdad de su stock.
type LedgerEntry struct {
	ID            string
	ProductID     string
	BatchID       *string // nil para ajustes sin lote
	QuantityDelta int     // positivo entrada, negativo salida; nunca 0
	Kind          MovementKind
	ReferenceID   string // factura, orden, "AUTO-EXPIRE", etc.
	ActorID       *string
	CreatedAt     time.Time
}
