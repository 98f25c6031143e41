package inventory

import (
	"context"

	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el "unit of work" explícito del core: toda
// operación que muta ledger o lotes recibe sus repos por aquí, nunca por
// estado global, de modo que operaciones compuestas (un checkout que encadena
// varias deducciones) sean atómicas por construcción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
	) error) error
}
