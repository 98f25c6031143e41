package inventory

import "github.com/tu-usuario/pos-ledger/internal/domain/entity"

// RecomputeStock deriva el stock actual desde una secuencia de movimientos del
// ledger: suma firmada de los deltas. Función pura, testeable sin el camino de
// escritura que la dispara; el valor cacheado en Product debe ser siempre
// reproducible con ella.
func RecomputeStock(entries []*entity.LedgerEntry) int {
	total := 0
	for _, e := range entries {
		total += e.QuantityDelta
	}
	return total
}
