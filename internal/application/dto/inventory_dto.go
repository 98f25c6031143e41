package dto

import "github.com/shopspring/decimal"

// ReceiveStockRequest entrada para recepción de mercadería (crea lote).
// ExpiryDate en formato canónico "2006-01-02 15:04:05"; vacío = sin vencimiento.
type ReceiveStockRequest struct {
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ExpiryDate  string          `json:"expiry_date,omitempty"`
	ReferenceID string          `json:"reference_id"`
}

// DeductStockRequest entrada para deducción manual (merma, rotura, etc.).
type DeductStockRequest struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Kind        string `json:"kind"` // SALE, RETURN, ADJUSTMENT, EXPIRE
	ReferenceID string `json:"reference_id"`
}

// AdjustStockRequest entrada para ajuste crudo con delta firmado.
type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	Delta       int    `json:"delta"`
	ReferenceID string `json:"reference_id"`
}

// ExpireDueRequest entrada del barrido de vencidos. AsOf vacío = ahora.
type ExpireDueRequest struct {
	AsOf string `json:"as_of,omitempty"` // formato canónico
}

// LedgerEntryDTO un movimiento del ledger para respuesta HTTP.
type LedgerEntryDTO struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"product_id"`
	BatchID       *string `json:"batch_id,omitempty"`
	QuantityDelta int     `json:"quantity_delta"`
	Kind          string  `json:"kind"`
	ReferenceID   string  `json:"reference_id"`
	ActorID       *string `json:"actor_id,omitempty"`
	CreatedAt     string  `json:"created_at"` // formato canónico
}

// StockResponse stock actual de un producto.
type StockResponse struct {
	ProductID   string `json:"product_id"`
	CachedStock int    `json:"cached_stock"`
	LedgerStock int    `json:"ledger_stock"`
}
