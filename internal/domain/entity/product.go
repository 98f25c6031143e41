package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo.
// CachedStock es una proyección denormalizada del ledger: nunca es autoritativa,
// solo la escribe el proyector de stock y siempre debe poder recalcularse desde
// la suma de movimientos del producto.
type Product struct {
	ID          string
	Name        string
	UnitCost    decimal.Decimal // costo de referencia (el costo real vive en cada lote)
	UnitPrice   decimal.Decimal // precio de venta
	CachedStock int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
