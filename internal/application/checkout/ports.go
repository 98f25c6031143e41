package checkout

import (
	"context"

	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

// CheckoutTxRunner scope transaccional del checkout: inventario más ventas y
// turnos, todo atado a la misma tx para que la venta completa sea atómica.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		shiftRepo repository.ShiftRepository,
	) error) error
}

// InventoryDeductor la porción del motor de inventario que el checkout compone
// dentro de su propia transacción.
type InventoryDeductor interface {
	DeductInTx(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
		productID string, qty int, kind entity.MovementKind, referenceID string, actorID *string,
	) error
}
