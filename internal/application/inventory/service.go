package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-ledger/internal/application/audit"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
	domaininv "github.com/tu-usuario/pos-ledger/internal/domain/inventory"
	"github.com/tu-usuario/pos-ledger/internal/domain/repository"
)

// Service motor de inventario: único escritor de lotes y de filas del ledger.
// Cada operación pública abre su propio scope transaccional vía TxRunner y
// hace Commit o Rollback completo; las variantes *InTx reciben los repos
// atados a la tx del caller para componer operaciones atómicas (checkout).
//
// Ninguna operación es idempotente por diseño: dos envíos idénticos producen
// dos juegos de movimientos. La deduplicación es responsabilidad del caller.
type Service struct {
	txRunner    TxRunner
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
	batchRepo   repository.BatchRepository
	auditor     audit.Recorder
}

// NewService construye el motor de inventario. Los repos sueltos son para el
// camino de solo lectura (historial, stock); las escrituras van por txRunner.
func NewService(
	txRunner TxRunner,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	auditor audit.Recorder,
) *Service {
	return &Service{
		txRunner:    txRunner,
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		batchRepo:   batchRepo,
		auditor:     auditor,
	}
}

// ReceiveInput entrada para Receive: recepción de mercadería que crea un lote.
type ReceiveInput struct {
	ProductID   string
	Quantity    int
	UnitCost    decimal.Decimal
	ExpiryDate  *time.Time
	ReferenceID string
	ActorID     *string
}

// Receive crea un lote nuevo con remaining = qty, apende un movimiento
// PURCHASE de +qty referenciando el lote y refresca la caché de stock, todo en
// un scope transaccional propio. Devuelve el ID del lote creado.
func (s *Service) Receive(ctx context.Context, in ReceiveInput) (string, error) {
	var batchID string
	err := s.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
	) error {
		id, err := s.ReceiveInTx(ledgerRepo, batchRepo, productRepo, in)
		if err != nil {
			return err
		}
		batchID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	s.auditor.RecordAction(in.ActorID, "STOCK_PURCHASE", "Product", in.ProductID,
		fmt.Sprintf("Qty: %d, Ref: %s", in.Quantity, in.ReferenceID))
	return batchID, nil
}

// ReceiveInTx variante de Receive sobre la transacción del caller.
func (s *Service) ReceiveInTx(
	ledgerRepo repository.LedgerRepository,
	batchRepo repository.BatchRepository,
	productRepo repository.ProductRepository,
	in ReceiveInput,
) (string, error) {
	if in.Quantity <= 0 {
		return "", domain.ErrInvalidQuantity
	}
	if in.UnitCost.LessThan(decimal.Zero) {
		return "", domain.ErrConstraintViolation
	}
	product, err := productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}

	now := entity.NormalizeTimestamp(time.Now())
	var expiry *time.Time
	if in.ExpiryDate != nil {
		e := entity.NormalizeTimestamp(*in.ExpiryDate)
		expiry = &e
	}
	batch := &entity.Batch{
		ID:                uuid.New().String(),
		ProductID:         in.ProductID,
		Label:             "BATCH-" + uuid.New().String()[:8],
		ExpiryDate:        expiry,
		UnitCost:          in.UnitCost,
		ReceivedQuantity:  in.Quantity,
		RemainingQuantity: in.Quantity,
		CreatedAt:         now,
	}
	if err := batchRepo.Create(batch); err != nil {
		return "", err
	}

	entry := &entity.LedgerEntry{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		BatchID:       &batch.ID,
		QuantityDelta: in.Quantity,
		Kind:          entity.MovementPurchase,
		ReferenceID:   in.ReferenceID,
		ActorID:       in.ActorID,
		CreatedAt:     now,
	}
	if err := ledgerRepo.Append(entry); err != nil {
		return "", err
	}

	if err := s.refreshCachedStock(ledgerRepo, productRepo, in.ProductID); err != nil {
		return "", err
	}
	return batch.ID, nil
}

// Deduct descuenta qty unidades del producto siguiendo FEFO/FIFO en un scope
// transaccional propio. Con stock insuficiente no escribe nada y devuelve
// *InsufficientStockError con el faltante.
func (s *Service) Deduct(ctx context.Context, productID string, qty int, kind entity.MovementKind, referenceID string, actorID *string) error {
	err := s.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
	) error {
		return s.DeductInTx(ledgerRepo, batchRepo, productRepo, productID, qty, kind, referenceID, actorID)
	})
	if err != nil {
		return err
	}
	s.auditor.RecordAction(actorID, "STOCK_DEDUCTION", "Product", productID,
		fmt.Sprintf("Qty: -%d, Kind: %s, Ref: %s", qty, kind, referenceID))
	return nil
}

// DeductInTx variante de Deduct sobre la transacción del caller. El plan FEFO
// completo se calcula antes de aplicar mutación alguna; recién después se
// actualizan los lotes y se apende un movimiento negativo por lote tocado, con
// un único refresco de caché al final.
func (s *Service) DeductInTx(
	ledgerRepo repository.LedgerRepository,
	batchRepo repository.BatchRepository,
	productRepo repository.ProductRepository,
	productID string, qty int, kind entity.MovementKind, referenceID string, actorID *string,
) error {
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	if !kind.Valid() {
		return domain.ErrConstraintViolation
	}
	product, err := productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	// Lotes abiertos en orden FEFO, con bloqueo de fila dentro de la tx
	batches, err := batchRepo.OpenBatchesFEFO(productID)
	if err != nil {
		return err
	}
	plan, err := domaininv.PlanAllocation(productID, batches, qty)
	if err != nil {
		return err
	}

	now := entity.NormalizeTimestamp(time.Now())
	for _, alloc := range plan {
		if err := batchRepo.UpdateRemaining(alloc.Batch.ID, alloc.Batch.RemainingQuantity-alloc.Quantity); err != nil {
			return err
		}
		entry := &entity.LedgerEntry{
			ID:            uuid.New().String(),
			ProductID:     productID,
			BatchID:       &alloc.Batch.ID,
			QuantityDelta: -alloc.Quantity,
			Kind:          kind,
			ReferenceID:   referenceID,
			ActorID:       actorID,
			CreatedAt:     now,
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return err
		}
	}

	return s.refreshCachedStock(ledgerRepo, productRepo, productID)
}

// Adjust ajuste crudo con delta firmado: positivo se trata como recepción de
// un lote sin costo ni vencimiento, negativo como deducción ADJUSTMENT, cero
// es no-op. (El positivo confunde "stock encontrado" con "stock comprado" a
// efectos de margen; se mantiene el comportamiento histórico.)
func (s *Service) Adjust(ctx context.Context, productID string, delta int, referenceID string, actorID *string) error {
	if delta == 0 {
		return nil
	}
	var err error
	if delta > 0 {
		_, err = s.Receive(ctx, ReceiveInput{
			ProductID:   productID,
			Quantity:    delta,
			UnitCost:    decimal.Zero,
			ReferenceID: referenceID,
			ActorID:     actorID,
		})
	} else {
		err = s.Deduct(ctx, productID, -delta, entity.MovementAdjustment, referenceID, actorID)
	}
	if err != nil {
		return err
	}
	s.auditor.RecordAction(actorID, "STOCK_ADJUSTMENT", "Product", productID,
		fmt.Sprintf("Delta: %d, Ref: %s", delta, referenceID))
	return nil
}

// ExpireDueBatches barrido de vencidos: todo lote con vencimiento anterior a
// asOf y remaining > 0 se pone en cero, con un movimiento EXPIRE por el total
// restante (referencia AUTO-EXPIRE) y refresco de caché por producto tocado.
// Pensado como barrido periódico, no por venta. Devuelve cuántos lotes venció.
func (s *Service) ExpireDueBatches(ctx context.Context, asOf time.Time, actorID *string) (int, error) {
	expired := 0
	err := s.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		batchRepo repository.BatchRepository,
		productRepo repository.ProductRepository,
	) error {
		batches, err := batchRepo.ExpiredBatches(entity.NormalizeTimestamp(asOf))
		if err != nil {
			return err
		}
		now := entity.NormalizeTimestamp(time.Now())
		touched := make(map[string]bool)
		for _, b := range batches {
			if err := batchRepo.UpdateRemaining(b.ID, 0); err != nil {
				return err
			}
			entry := &entity.LedgerEntry{
				ID:            uuid.New().String(),
				ProductID:     b.ProductID,
				BatchID:       &b.ID,
				QuantityDelta: -b.RemainingQuantity,
				Kind:          entity.MovementExpire,
				ReferenceID:   "AUTO-EXPIRE",
				ActorID:       actorID,
				CreatedAt:     now,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return err
			}
			touched[b.ProductID] = true
			expired++
		}
		for productID := range touched {
			if err := s.refreshCachedStock(ledgerRepo, productRepo, productID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		s.auditor.RecordAction(actorID, "STOCK_EXPIRE", "Batch", "AUTO-EXPIRE",
			fmt.Sprintf("Lotes vencidos: %d, corte: %s", expired, entity.FormatTimestamp(asOf)))
	}
	return expired, nil
}

// refreshCachedStock proyección sincrónica: deja Product.CachedStock igual a
// la suma firmada del ledger, dentro del mismo scope que la escritura que la
// disparó.
func (s *Service) refreshCachedStock(
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	productID string,
) error {
	stock, err := ledgerRepo.SumFor(productID)
	if err != nil {
		return err
	}
	return productRepo.UpdateCachedStock(productID, stock)
}

// RepairStock recalcula la caché de un producto desde el ledger bajo demanda.
// Devuelve el stock resultante.
func (s *Service) RepairStock(ctx context.Context, productID string) (int, error) {
	stock := 0
	err := s.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		_ repository.BatchRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := s.refreshCachedStock(ledgerRepo, productRepo, productID); err != nil {
			return err
		}
		var err error
		stock, err = ledgerRepo.SumFor(productID)
		return err
	})
	return stock, err
}

// HistoryFor ledger del producto, más reciente primero (lectura sin tx).
func (s *Service) HistoryFor(_ context.Context, productID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	return s.ledgerRepo.HistoryFor(productID, limit, offset)
}

// CurrentStock valor cacheado en el producto (lectura rápida, no autoritativa).
func (s *Service) CurrentStock(_ context.Context, productID string) (int, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return product.CachedStock, nil
}

// LedgerStock suma autoritativa del ledger para el producto.
func (s *Service) LedgerStock(_ context.Context, productID string) (int, error) {
	return s.ledgerRepo.SumFor(productID)
}
