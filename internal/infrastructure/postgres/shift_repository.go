package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación de turnos y caja sobre PostgreSQL (usable con pool o tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `id, operator_id, start_time, end_time, opening_cash, expected_closing_cash, actual_closing_cash, status`

// CreateShift inserta un turno.
func (r *ShiftRepo) CreateShift(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.OperatorID, shift.StartTime, shift.EndTime,
		shift.OpeningCash, shift.ExpectedClosingCash, shift.ActualClosingCash, shift.Status,
	)
	if err != nil {
		return classifyErr("create shift", err)
	}
	return nil
}

// GetByID obtiene un turno; nil si no existe.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	s, err := scanShiftRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyErr("get shift", err)
	}
	return s, nil
}

// ActiveShiftFor turno abierto del operador; nil si no tiene. El índice único
// parcial sobre (operator_id) WHERE status = 'OPEN' garantiza a lo sumo uno.
func (r *ShiftRepo) ActiveShiftFor(operatorID string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE operator_id = $1 AND status = $2`
	s, err := scanShiftRow(r.q.QueryRow(context.Background(), query, operatorID, entity.ShiftStatusOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyErr("active shift", err)
	}
	return s, nil
}

// UpdateShift escribe el estado completo del turno (cierre incluido).
func (r *ShiftRepo) UpdateShift(shift *entity.Shift) error {
	query := `
		UPDATE shifts
		SET end_time = $1, expected_closing_cash = $2, actual_closing_cash = $3, status = $4
		WHERE id = $5`
	tag, err := r.q.Exec(context.Background(), query,
		shift.EndTime, shift.ExpectedClosingCash, shift.ActualClosingCash, shift.Status, shift.ID,
	)
	if err != nil {
		return classifyErr("update shift", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateDrawerTransaction inserta un movimiento de caja del turno.
func (r *ShiftRepo) CreateDrawerTransaction(tx *entity.CashDrawerTransaction) error {
	query := `
		INSERT INTO cash_drawer_transactions (id, shift_id, kind, amount, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ShiftID, tx.Kind, tx.Amount, tx.ReferenceID, tx.CreatedAt,
	)
	if err != nil {
		return classifyErr("create drawer transaction", err)
	}
	return nil
}

// DrawerTransactionsFor movimientos de caja del turno, más antiguo primero.
func (r *ShiftRepo) DrawerTransactionsFor(shiftID string) ([]*entity.CashDrawerTransaction, error) {
	query := `
		SELECT id, shift_id, kind, amount, reference_id, created_at
		FROM cash_drawer_transactions WHERE shift_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, shiftID)
	if err != nil {
		return nil, classifyErr("drawer transactions", err)
	}
	defer rows.Close()
	var list []*entity.CashDrawerTransaction
	for rows.Next() {
		var t entity.CashDrawerTransaction
		if err := rows.Scan(&t.ID, &t.ShiftID, &t.Kind, &t.Amount, &t.ReferenceID, &t.CreatedAt); err != nil {
			return nil, classifyErr("scan drawer transaction", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyErr("iterate drawer transactions", err)
	}
	return list, nil
}

func scanShiftRow(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	if err := row.Scan(&s.ID, &s.OperatorID, &s.StartTime, &s.EndTime,
		&s.OpeningCash, &s.ExpectedClosingCash, &s.ActualClosingCash, &s.Status); err != nil {
		return nil, err
	}
	return &s, nil
}
