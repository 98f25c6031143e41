package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
	"github.com/tu-usuario/pos-ledger/pkg/logger"
)

// UseCase orquestador de checkout: punto de entrada único para completar una
// venta. Acopla cabecera, líneas, pagos y deducción de inventario en un solo
// scope transaccional todo-o-nada; nunca queda venta parcial observable.
type UseCase struct {
	txRunner  CheckoutTxRunner
	inventory InventoryDeductor
	auditor   audit.Recorder
	log       *logger.Logger
}

// NewUseCase construye el orquestador.
func NewUseCase(txRunner CheckoutTxRunner, inventory InventoryDeductor, auditor audit.Recorder, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, inventory: inventory, auditor: auditor, log: log}
}

// ProcessCheckout completa la venta dentro de una transacción:
//  1. persiste la cabecera y obtiene su ID
//  2. persiste las líneas en orden
//  3. persiste los pagos en orden
//  4. por cada línea deduce inventario (FEFO) con referencia "SALE-<id>";
//     cualquier fallo, stock insuficiente incluido, deshace los pasos 1-3 y
//     las deducciones ya aplicadas en el bucle
//  5. si hay turno activo asociado, apende una transacción de caja por el
//     efectivo neto recibido; el fallo de este paso se loguea y NO deshace la venta
//  6. commit
//
// El caller ya validó que la suma de pagos cubre el total. La notificación de
// auditoría dispara después del commit, fuera del scope.
func (uc *UseCase) ProcessCheckout(
	ctx context.Context,
	sale *entity.Sale,
	items []*entity.SaleLineItem,
	payments []*entity.SalePayment,
) (string, error) {
	if sale == nil || len(items) == 0 {
		return "", domain.ErrConstraintViolation
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return "", domain.ErrInvalidQuantity
		}
	}

	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}
	sale.SaleDate = entity.NormalizeTimestamp(sale.SaleDate)
	saleID := sale.ID

	err := uc.txRunner.RunCheckout(ctx, func(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		shiftRepo repository.ShiftRepository,
	) error {
		// 1) Cabecera
		if err := saleRepo.CreateSale(sale); err != nil {
			return err
		}

		// 2) Líneas, en el orden recibido
		for _, item := range items {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.SaleID = saleID
			if err := saleRepo.CreateLineItem(item); err != nil {
				return err
			}
		}

		// 3) Pagos, en el orden recibido
		for _, p := range payments {
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			p.SaleID = saleID
			if p.PaymentDate.IsZero() {
				p.PaymentDate = time.Now()
			}
			p.PaymentDate = entity.NormalizeTimestamp(p.PaymentDate)
			if err := saleRepo.CreatePayment(p); err != nil {
				return err
			}
		}

		// 4) Deducción de inventario por línea, misma tx. Si inventario
		// retorna error (ej: sin stock) se retorna y el runner hace rollback.
		actorID := &sale.ActorID
		for _, item := range items {
			if err := uc.inventory.DeductInTx(
				ledgerRepo, batchRepo, productRepo,
				item.ProductID, item.Quantity,
				entity.MovementSale, "SALE-"+saleID, actorID,
			); err != nil {
				return err
			}
		}

		// 5) Caja: efectivo neto recibido si hay turno activo. Best-effort.
		if sale.ShiftID != nil {
			if err := uc.appendCashDrawerTx(shiftRepo, sale, payments); err != nil {
				uc.log.Warn().
					Err(err).
					Str("sale_id", saleID).
					Str("shift_id", *sale.ShiftID).
					Msg("transacción de caja no registrada; la venta sigue en pie")
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.auditor.RecordAction(&sale.ActorID, "CHECKOUT", "Sale", saleID,
		fmt.Sprintf("Total: %s, Items: %d", sale.TotalAmount.StringFixed(2), len(items)))
	return saleID, nil
}

// appendCashDrawerTx calcula el efectivo neto (efectivo entregado menos vuelto)
// y lo apende como transacción de caja del turno.
func (uc *UseCase) appendCashDrawerTx(
	shiftRepo repository.ShiftRepository,
	sale *entity.Sale,
	payments []*entity.SalePayment,
) error {
	cashReceived := decimal.Zero
	paidTotal := decimal.Zero
	for _, p := range payments {
		paidTotal = paidTotal.Add(p.Amount)
		if p.Method == entity.PaymentMethodCash {
			cashReceived = cashReceived.Add(p.Amount)
		}
	}
	// El vuelto sale de la caja en efectivo
	change := paidTotal.Sub(sale.TotalAmount)
	netCash := cashReceived.Sub(change)
	if netCash.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	return shiftRepo.CreateDrawerTransaction(&entity.CashDrawerTransaction{
		ID:          uuid.New().String(),
		ShiftID:     *sale.ShiftID,
		Kind:        entity.DrawerTxSaleCash,
		Amount:      netCash,
		ReferenceID: "SALE-" + sale.ID,
		CreatedAt:   entity.NormalizeTimestamp(time.Now()),
	})
}
