package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de lotes sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, product_id, label, expiry_date, unit_cost, received_quantity, remaining_quantity, created_at`

// Create inserta un lote nuevo.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.Label, batch.ExpiryDate,
		batch.UnitCost, batch.ReceivedQuantity, batch.RemainingQuantity, batch.CreatedAt,
	)
	if err != nil {
		return classifyErr("create batch", err)
	}
	return nil
}

// GetByID obtiene un lote; nil si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	b, err := scanBatchRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyErr("get batch", err)
	}
	return b, nil
}

// OpenBatchesFEFO lotes abiertos del producto en orden de consumo FEFO/FIFO.
// COALESCE manda los sin-vencimiento al final (como si vencieran en la fecha
// máxima); FOR UPDATE bloquea las filas dentro de la tx en curso.
func (r *BatchRepo) OpenBatchesFEFO(productID string) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + ` FROM batches
		WHERE product_id = $1 AND remaining_quantity > 0
		ORDER BY COALESCE(expiry_date, 'infinity'::timestamp) ASC, created_at ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, classifyErr("open batches", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

// UpdateRemaining fija la cantidad restante. Negativo viola el invariante del
// lote y se rechaza antes de escribir; el CHECK de la tabla lo respalda.
func (r *BatchRepo) UpdateRemaining(batchID string, remaining int) error {
	if remaining < 0 {
		return domain.ErrConstraintViolation
	}
	query := `UPDATE batches SET remaining_quantity = $1 WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, remaining, batchID)
	if err != nil {
		return classifyErr("update batch remaining", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExpiredBatches lotes vencidos antes del umbral con remaining > 0, bloqueados
// para el barrido.
func (r *BatchRepo) ExpiredBatches(threshold time.Time) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + ` FROM batches
		WHERE expiry_date IS NOT NULL AND expiry_date < $1 AND remaining_quantity > 0
		ORDER BY expiry_date ASC, created_at ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, classifyErr("expired batches", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

// ListByProduct todos los lotes del producto, más reciente primero.
func (r *BatchRepo) ListByProduct(productID string) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE product_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, classifyErr("list batches", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

func scanBatchRow(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	if err := row.Scan(&b.ID, &b.ProductID, &b.Label, &b.ExpiryDate,
		&b.UnitCost, &b.ReceivedQuantity, &b.RemainingQuantity, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBatches(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Label, &b.ExpiryDate,
			&b.UnitCost, &b.ReceivedQuantity, &b.RemainingQuantity, &b.CreatedAt); err != nil {
			return nil, classifyErr("scan batch", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate batches", err)
	}
	return list, nil
}
