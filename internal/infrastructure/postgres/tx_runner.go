package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-ledger/internal/application/checkout"
	"github.com/tu-usuario/pos-ledger/internal/application/inventory"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and checkout.CheckoutTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ checkout.CheckoutTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Si el pool
// no puede iniciar la tx (pool cerrado, ventana de backup, red caída) falla
// rápido con ErrStorageUnavailable en lugar de colgarse o aplicar a medias.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de inventario atados a la
// tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	batchRepo repository.BatchRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ledgerRepo := NewLedgerRepository(tx)
	batchRepo := NewBatchRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(ledgerRepo, batchRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return classifyErr("commit transaction", err)
	}
	return nil
}

// RunCheckout inicia una transacción con repos de inventario, ventas y turnos
// (para el orquestador de checkout).
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	batchRepo repository.BatchRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	shiftRepo repository.ShiftRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ledgerRepo := NewLedgerRepository(tx)
	batchRepo := NewBatchRepository(tx)
	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	shiftRepo := NewShiftRepository(tx)

	if err := fn(ledgerRepo, batchRepo, productRepo, saleRepo, shiftRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return classifyErr("commit transaction", err)
	}
	return nil
}
