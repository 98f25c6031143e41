package shift_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/application/shift"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// fakeShiftRepo repositorio de turnos en memoria.
type fakeShiftRepo struct {
	shifts    map[string]*entity.Shift
	drawerTxs []*entity.CashDrawerTransaction
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*entity.Shift)}
}

func (r *fakeShiftRepo) CreateShift(sh *entity.Shift) error {
	c := *sh
	r.shifts[c.ID] = &c
	return nil
}

func (r *fakeShiftRepo) GetByID(id string) (*entity.Shift, error) {
	sh, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	c := *sh
	return &c, nil
}

func (r *fakeShiftRepo) ActiveShiftFor(operatorID string) (*entity.Shift, error) {
	for _, sh := range r.shifts {
		if sh.OperatorID == operatorID && sh.Status == entity.ShiftStatusOpen {
			c := *sh
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeShiftRepo) UpdateShift(sh *entity.Shift) error {
	if _, ok := r.shifts[sh.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *sh
	r.shifts[c.ID] = &c
	return nil
}

func (r *fakeShiftRepo) CreateDrawerTransaction(tx *entity.CashDrawerTransaction) error {
	c := *tx
	r.drawerTxs = append(r.drawerTxs, &c)
	return nil
}

func (r *fakeShiftRepo) DrawerTransactionsFor(shiftID string) ([]*entity.CashDrawerTransaction, error) {
	var out []*entity.CashDrawerTransaction
	for _, tx := range r.drawerTxs {
		if tx.ShiftID == shiftID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func dinero(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestOpenShift_CreaTurnoConFondo(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	sh, err := uc.OpenShift("operador-1", dinero(100))
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStatusOpen, sh.Status)
	assert.True(t, sh.OpeningCash.Equal(dinero(100)))

	require.Len(t, repo.drawerTxs, 1, "el fondo inicial queda como transacción de caja")
	assert.Equal(t, entity.DrawerTxOpeningFloat, repo.drawerTxs[0].Kind)
	assert.True(t, repo.drawerTxs[0].Amount.Equal(dinero(100)))
}

func TestOpenShift_FondoCeroSinTransaccion(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	_, err := uc.OpenShift("operador-1", decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, repo.drawerTxs)
}

func TestOpenShift_FondoNegativo(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	_, err := uc.OpenShift("operador-1", dinero(-1))
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestOpenShift_SegundoTurnoDelMismoOperador(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	_, err := uc.OpenShift("operador-1", dinero(50))
	require.NoError(t, err)

	_, err = uc.OpenShift("operador-1", dinero(50))
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
}

func TestCloseShift_CalculaEsperadoDesdeCaja(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	sh, err := uc.OpenShift("operador-1", dinero(100))
	require.NoError(t, err)

	// Ventas en efectivo y un retiro durante el turno
	require.NoError(t, repo.CreateDrawerTransaction(&entity.CashDrawerTransaction{
		ID: "t1", ShiftID: sh.ID, Kind: entity.DrawerTxSaleCash, Amount: dinero(75.50),
	}))
	require.NoError(t, repo.CreateDrawerTransaction(&entity.CashDrawerTransaction{
		ID: "t2", ShiftID: sh.ID, Kind: entity.DrawerTxPayout, Amount: dinero(-20),
	}))

	closed, err := uc.CloseShift(sh.ID, dinero(155))
	require.NoError(t, err)

	assert.Equal(t, entity.ShiftStatusClosed, closed.Status)
	require.NotNil(t, closed.EndTime)
	require.NotNil(t, closed.ExpectedClosingCash)
	assert.True(t, closed.ExpectedClosingCash.Equal(dinero(155.50)),
		"esperado = 100 de fondo + 75.50 de ventas - 20 de retiro")
	require.NotNil(t, closed.ActualClosingCash)
	assert.True(t, closed.ActualClosingCash.Equal(dinero(155)))
}

func TestCloseShift_TurnoInexistente(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	_, err := uc.CloseShift("fantasma", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCloseShift_YaCerrado(t *testing.T) {
	repo := newFakeShiftRepo()
	uc := shift.NewUseCase(repo, audit.Nop{})

	sh, err := uc.OpenShift("operador-1", dinero(10))
	require.NoError(t, err)
	_, err = uc.CloseShift(sh.ID, dinero(10))
	require.NoError(t, err)

	_, err = uc.CloseShift(sh.ID, dinero(10))
	assert.ErrorIs(t, err, domain.ErrShiftClosed)
}
