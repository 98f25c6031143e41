package shift

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

// UseCase contabilidad de caja por operador: apertura y cierre de turnos y
// conciliación contra las transacciones de caja que deja el checkout.
type UseCase struct {
	shiftRepo repository.ShiftRepository
	auditor   audit.Recorder
}

// NewUseCase construye el caso de uso de turnos.
func NewUseCase(shiftRepo repository.ShiftRepository, auditor audit.Recorder) *UseCase {
	return &UseCase{shiftRepo: shiftRepo, auditor: auditor}
}

// OpenShift abre un turno con fondo inicial y registra la transacción de caja
// OPENING_FLOAT. Un operador solo puede tener un turno abierto.
func (uc *UseCase) OpenShift(operatorID string, openingCash decimal.Decimal) (*entity.Shift, error) {
	if openingCash.LessThan(decimal.Zero) {
		return nil, domain.ErrConstraintViolation
	}
	active, err := uc.shiftRepo.ActiveShiftFor(operatorID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrShiftAlreadyOpen
	}

	now := entity.NormalizeTimestamp(time.Now())
	sh := &entity.Shift{
		ID:          uuid.New().String(),
		OperatorID:  operatorID,
		StartTime:   now,
		OpeningCash: openingCash,
		Status:      entity.ShiftStatusOpen,
	}
	if err := uc.shiftRepo.CreateShift(sh); err != nil {
		return nil, err
	}
	if openingCash.GreaterThan(decimal.Zero) {
		err := uc.shiftRepo.CreateDrawerTransaction(&entity.CashDrawerTransaction{
			ID:        uuid.New().String(),
			ShiftID:   sh.ID,
			Kind:      entity.DrawerTxOpeningFloat,
			Amount:    openingCash,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}
	}
	uc.auditor.RecordAction(&operatorID, "SHIFT_OPEN", "Shift", sh.ID,
		fmt.Sprintf("Fondo inicial: %s", openingCash.StringFixed(2)))
	return sh, nil
}

// CloseShift cierra el turno: calcula el efectivo esperado sumando las
// transacciones de caja y registra el conteo físico declarado.
func (uc *UseCase) CloseShift(shiftID string, actualClosingCash decimal.Decimal) (*entity.Shift, error) {
	sh, err := uc.shiftRepo.GetByID(shiftID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	if sh.Status != entity.ShiftStatusOpen {
		return nil, domain.ErrShiftClosed
	}

	txs, err := uc.shiftRepo.DrawerTransactionsFor(shiftID)
	if err != nil {
		return nil, err
	}
	expected := decimal.Zero
	for _, tx := range txs {
		expected = expected.Add(tx.Amount)
	}

	now := entity.NormalizeTimestamp(time.Now())
	sh.EndTime = &now
	sh.ExpectedClosingCash = &expected
	sh.ActualClosingCash = &actualClosingCash
	sh.Status = entity.ShiftStatusClosed
	if err := uc.shiftRepo.UpdateShift(sh); err != nil {
		return nil, err
	}
	uc.auditor.RecordAction(&sh.OperatorID, "SHIFT_CLOSE", "Shift", sh.ID,
		fmt.Sprintf("Esperado: %s, Declarado: %s", expected.StringFixed(2), actualClosingCash.StringFixed(2)))
	return sh, nil
}

// ActiveShiftFor turno abierto del operador; nil si no tiene.
func (uc *UseCase) ActiveShiftFor(operatorID string) (*entity.Shift, error) {
	return uc.shiftRepo.ActiveShiftFor(operatorID)
}

// DrawerTransactionsFor movimientos de caja del turno para conciliación.
func (uc *UseCase) DrawerTransactionsFor(shiftID string) ([]*entity.CashDrawerTransaction, error) {
	return uc.shiftRepo.DrawerTransactionsFor(shiftID)
}
