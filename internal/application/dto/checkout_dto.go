package dto

import "github.com/shopspring/decimal"

// CheckoutLineItem línea de venta en el request de checkout.
// Precio y costo llegan ya congelados por el caller.
type CheckoutLineItem struct {
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	PriceAtSale    decimal.Decimal `json:"price_at_sale"`
	CostAtSale     decimal.Decimal `json:"cost_at_sale"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
}

// CheckoutPayment pago aplicado a la venta.
type CheckoutPayment struct {
	Method string          `json:"method"` // CASH, CARD, TRANSFER, ...
	Amount decimal.Decimal `json:"amount"`
}

// CheckoutRequest venta precomputada: cabecera, líneas ordenadas y pagos
// ordenados. El caller ya validó que la suma de pagos cubre el total.
type CheckoutRequest struct {
	ShiftID        string             `json:"shift_id,omitempty"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	TotalProfit    decimal.Decimal    `json:"total_profit"`
	Items          []CheckoutLineItem `json:"items"`
	Payments       []CheckoutPayment  `json:"payments"`
}

// CheckoutResponse resultado de un checkout exitoso.
type CheckoutResponse struct {
	SaleID string `json:"sale_id"`
}

// InsufficientStockResponse detalle del faltante cuando un checkout o una
// deducción no puede satisfacerse.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	ProductID string `json:"product_id"`
	Shortfall int    `json:"shortfall"`
}
