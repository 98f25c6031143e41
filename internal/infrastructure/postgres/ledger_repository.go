package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla ledger_entries es append-only: este adaptador no expone UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append persiste un movimiento. Delta cero o tipo fuera del conjunto cerrado
// se rechazan antes de tocar la base; producto o lote inexistente sale como
// ConstraintViolation vía la FK.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	if entry.QuantityDelta == 0 {
		return domain.ErrConstraintViolation
	}
	if !entry.Kind.Valid() {
		return domain.ErrConstraintViolation
	}
	query := `
		INSERT INTO ledger_entries (id, product_id, batch_id, quantity_delta, kind, reference_id, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.BatchID, entry.QuantityDelta,
		string(entry.Kind), entry.ReferenceID, entry.ActorID, entry.CreatedAt,
	)
	if err != nil {
		return classifyErr("append ledger entry", err)
	}
	return nil
}

// SumFor suma firmada de los deltas del producto: fuente autoritativa de stock.
func (r *LedgerRepo) SumFor(productID string) (int, error) {
	query := `SELECT COALESCE(SUM(quantity_delta), 0) FROM ledger_entries WHERE product_id = $1`
	var total int
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&total); err != nil {
		return 0, classifyErr("sum ledger", err)
	}
	return total, nil
}

// HistoryFor movimientos del producto, más reciente primero.
func (r *LedgerRepo) HistoryFor(productID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, product_id, batch_id, quantity_delta, kind, reference_id, actor_id, created_at
		FROM ledger_entries WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, classifyErr("ledger history", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

// ListByDateRange movimientos en la ventana [from, to], más antiguo primero.
func (r *LedgerRepo) ListByDateRange(from, to time.Time) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, product_id, batch_id, quantity_delta, kind, reference_id, actor_id, created_at
		FROM ledger_entries WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, classifyErr("ledger by date range", err)
	}
	defer rows.Close()
	return scanLedgerEntries(rows)
}

func scanLedgerEntries(rows pgx.Rows) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		var kind string
		if err := rows.Scan(&e.ID, &e.ProductID, &e.BatchID, &e.QuantityDelta,
			&kind, &e.ReferenceID, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, classifyErr("scan ledger entry", err)
		}
		e.Kind = entity.MovementKind(kind)
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate ledger entries", err)
	}
	return list, nil
}
