package inventory

import (
	"sort"

	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// Allocation un par (lote, cantidad) del plan de deducción.
type Allocation struct {
	Batch    *entity.Batch
	Quantity int
}

// PlanAllocation calcula el plan FEFO/FIFO completo para deducir qty unidades
// antes de aplicar mutación alguna (look-before-you-leap): si los lotes abiertos
// no alcanzan, retorna *InsufficientStockError con el faltante y ningún plan.
//
// Orden de consumo: vencimiento ascendente con los lotes sin vencimiento al
// final (como si vencieran en la fecha máxima representable) y, a igual
// vencimiento, por fecha de recepción ascendente. La función reordena la
// entrada por si el caller no la trae ya ordenada.
func PlanAllocation(productID string, batches []*entity.Batch, qty int) ([]Allocation, error) {
	if qty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	ordered := make([]*entity.Batch, 0, len(batches))
	for _, b := range batches {
		if b.Open() {
			ordered = append(ordered, b)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return fefoLess(ordered[i], ordered[j])
	})

	var plan []Allocation
	remaining := qty
	for _, b := range ordered {
		if remaining <= 0 {
			break
		}
		take := b.RemainingQuantity
		if take > remaining {
			take = remaining
		}
		plan = append(plan, Allocation{Batch: b, Quantity: take})
		remaining -= take
	}

	if remaining > 0 {
		return nil, &domain.InsufficientStockError{
			ProductID: productID,
			Requested: qty,
			Available: qty - remaining,
		}
	}
	return plan, nil
}

// fefoLess orden FEFO con desempate FIFO. Un vencimiento nil ordena después de
// cualquier fecha real.
func fefoLess(a, b *entity.Batch) bool {
	switch {
	case a.ExpiryDate == nil && b.ExpiryDate == nil:
		return a.CreatedAt.Before(b.CreatedAt)
	case a.ExpiryDate == nil:
		return false
	case b.ExpiryDate == nil:
		return true
	case a.ExpiryDate.Equal(*b.ExpiryDate):
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return a.ExpiryDate.Before(*b.ExpiryDate)
	}
}
