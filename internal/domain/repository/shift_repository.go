package repository

import "github.com/tu-usuario/pos-ledger/internal/domain/entity"

// ShiftRepository puerto de persistencia de turnos y transacciones de caja.
type ShiftRepository interface {
	CreateShift(shift *entity.Shift) error
	// GetByID obtiene un turno; nil si no existe.
	GetByID(id string) (*entity.Shift, error)
	// ActiveShiftFor turno abierto del operador; nil si no tiene.
	ActiveShiftFor(operatorID string) (*entity.Shift, error)
	UpdateShift(shift *entity.Shift) error
	CreateDrawerTransaction(tx *entity.CashDrawerTransaction) error
	// DrawerTransactionsFor transacciones de caja del turno, más antigua primero.
	DrawerTransactionsFor(shiftID string) ([]*entity.CashDrawerTransaction, error)
}
