package repository

import (
	"time"

	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// LedgerRepository puerto de persistencia del ledger de inventario.
// Las filas son append-only: no existe Update ni Delete.
type LedgerRepository interface {
	// Append persiste un movimiento. Rechaza delta cero o tipo inválido con
	// ErrConstraintViolation antes de tocar el almacenamiento.
	Append(entry *entity.LedgerEntry) error
	// SumFor suma firmada de todos los deltas del producto. Fuente autoritativa
	// de stock; la usa el proyector para refrescar la caché.
	SumFor(productID string) (int, error)
	// HistoryFor movimientos del producto, más reciente primero.
	HistoryFor(productID string, limit, offset int) ([]*entity.LedgerEntry, error)
	// ListByDateRange movimientos en una ventana de tiempo, más antiguo primero.
	// Lectura para colaboradores de reporte.
	ListByDateRange(from, to time.Time) ([]*entity.LedgerEntry, error)
}
