package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa un lote discreto de stock recibido junto: pertenece a un
// producto, tiene etiqueta única, costo unitario al momento de la recepción y
// vencimiento opcional. Se crea solo en la recepción y nunca se repone.
// Invariante: 0 <= RemainingQuantity <= ReceivedQuantity.
type Batch struct {
	ID                string
	ProductID         string
	Label             string     // único, formato BATCH-<8 hex>
	ExpiryDate        *time.Time // nil = no vence; en FEFO se consume al final
	UnitCost          decimal.Decimal
	ReceivedQuantity  int
	RemainingQuantity int
	CreatedAt         time.Time
}

// Expired indica si el lote está vencido respecto al instante dado.
// Un lote sin vencimiento nunca expira.
func (b *Batch) Expired(asOf time.Time) bool {
	return b.ExpiryDate != nil && b.ExpiryDate.Before(asOf)
}

// Open indica si el lote aún tiene unidades disponibles.
func (b *Batch) Open() bool {
	return b.RemainingQuantity > 0
}
