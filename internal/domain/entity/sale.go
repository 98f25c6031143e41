package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta completada. Se crea una sola vez y es inmutable:
// este core no contempla anulaciones ni devoluciones sobre la cabecera.
type Sale struct {
	ID             string
	ActorID        string  // operador que cobró
	ShiftID        *string // turno activo, si lo hay
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	TotalProfit    decimal.Decimal
	SaleDate       time.Time
}

// SaleLineItem línea de una venta. Precio y costo quedan congelados al momento
// de la venta, independientes de cambios posteriores en el catálogo.
type SaleLineItem struct {
	ID             string
	SaleID         string
	ProductID      string
	Quantity       int
	PriceAtSale    decimal.Decimal
	CostAtSale     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
}

// SalePayment un pago aplicado a una venta. La validación "suma de pagos >= total"
// es responsabilidad del caller antes de llegar al orquestador.
type SalePayment struct {
	ID          string
	SaleID      string
	Method      string // "CASH", "CARD", "TRANSFER", ...
	Amount      decimal.Decimal
	PaymentDate time.Time
}

// PaymentMethodCash método de pago efectivo: el único que alimenta la caja.
const PaymentMethodCash = "CASH"
