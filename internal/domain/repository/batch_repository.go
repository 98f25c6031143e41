package repository

import (
	"time"

	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// BatchRepository puerto de persistencia de lotes.
type BatchRepository interface {
	// Create inserta un lote nuevo (solo en recepción; los lotes no se reponen).
	Create(batch *entity.Batch) error
	// GetByID obtiene un lote; nil si no existe.
	GetByID(id string) (*entity.Batch, error)
	// OpenBatchesFEFO lotes abiertos (remaining > 0) del producto en orden de
	// consumo: vencimiento ascendente con los sin-vencimiento al final, y a
	// igual vencimiento por fecha de recepción ascendente. Bloquea las filas
	// para update dentro de la transacción en curso.
	OpenBatchesFEFO(productID string) ([]*entity.Batch, error)
	// UpdateRemaining fija la cantidad restante de un lote.
	UpdateRemaining(batchID string, remaining int) error
	// ExpiredBatches lotes con vencimiento anterior al umbral y remaining > 0.
	ExpiredBatches(threshold time.Time) ([]*entity.Batch, error)
	// ListByProduct todos los lotes del producto, más reciente primero.
	ListByProduct(productID string) ([]*entity.Batch, error)
}
