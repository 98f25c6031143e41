package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-ledger/internal/domain"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

func fecha(s string) *time.Time {
	t, err := entity.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return &t
}

func lote(id string, expiry *time.Time, remaining int, createdAt string) *entity.Batch {
	created, err := entity.ParseTimestamp(createdAt)
	if err != nil {
		panic(err)
	}
	return &entity.Batch{
		ID:                id,
		ProductID:         "prod-1",
		Label:             "BATCH-" + id,
		ExpiryDate:        expiry,
		ReceivedQuantity:  remaining,
		RemainingQuantity: remaining,
		CreatedAt:         created,
	}
}

// El plan debe consumir primero el lote que vence antes; los sin vencimiento
// van al final.
func TestPlanAllocation_OrdenFEFO(t *testing.T) {
	batches := []*entity.Batch{
		lote("sin-vencimiento", nil, 10, "2025-01-01 08:00:00"),
		lote("vence-febrero", fecha("2025-02-01 00:00:00"), 10, "2025-01-02 08:00:00"),
		lote("vence-enero", fecha("2025-01-10 00:00:00"), 10, "2025-01-03 08:00:00"),
	}

	plan, err := PlanAllocation("prod-1", batches, 25)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	assert.Equal(t, "vence-enero", plan[0].Batch.ID)
	assert.Equal(t, 10, plan[0].Quantity)
	assert.Equal(t, "vence-febrero", plan[1].Batch.ID)
	assert.Equal(t, 10, plan[1].Quantity)
	assert.Equal(t, "sin-vencimiento", plan[2].Batch.ID)
	assert.Equal(t, 5, plan[2].Quantity, "el último lote solo aporta el resto")
}

// A igual vencimiento desempata el lote recibido primero (FIFO).
func TestPlanAllocation_DesempateFIFO(t *testing.T) {
	mismoVto := fecha("2025-03-01 00:00:00")
	batches := []*entity.Batch{
		lote("recibido-despues", mismoVto, 10, "2025-01-05 08:00:00"),
		lote("recibido-antes", mismoVto, 10, "2025-01-01 08:00:00"),
	}

	plan, err := PlanAllocation("prod-1", batches, 5)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "recibido-antes", plan[0].Batch.ID)
	assert.Equal(t, 5, plan[0].Quantity)
}

// Dos lotes sin vencimiento se ordenan entre sí por fecha de recepción.
func TestPlanAllocation_SinVencimientoOrdenaPorRecepcion(t *testing.T) {
	batches := []*entity.Batch{
		lote("b2", nil, 10, "2025-01-02 08:00:00"),
		lote("b1", nil, 10, "2025-01-01 08:00:00"),
	}

	plan, err := PlanAllocation("prod-1", batches, 12)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "b1", plan[0].Batch.ID)
	assert.Equal(t, 10, plan[0].Quantity)
	assert.Equal(t, "b2", plan[1].Batch.ID)
	assert.Equal(t, 2, plan[1].Quantity)
}

// Stock insuficiente: ningún plan y el error trae el faltante exacto.
func TestPlanAllocation_StockInsuficiente(t *testing.T) {
	batches := []*entity.Batch{
		lote("b1", fecha("2025-01-10 00:00:00"), 3, "2025-01-01 08:00:00"),
		lote("b2", nil, 4, "2025-01-02 08:00:00"),
	}

	plan, err := PlanAllocation("prod-1", batches, 10)
	assert.Nil(t, plan, "con faltante no debe haber plan parcial")

	ins, ok := domain.IsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, "prod-1", ins.ProductID)
	assert.Equal(t, 10, ins.Requested)
	assert.Equal(t, 7, ins.Available)
	assert.Equal(t, 3, ins.Shortfall())
}

// Los lotes con remaining cero no participan del plan.
func TestPlanAllocation_IgnoraLotesAgotados(t *testing.T) {
	batches := []*entity.Batch{
		lote("agotado", fecha("2025-01-05 00:00:00"), 0, "2025-01-01 08:00:00"),
		lote("abierto", fecha("2025-02-01 00:00:00"), 10, "2025-01-02 08:00:00"),
	}

	plan, err := PlanAllocation("prod-1", batches, 5)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "abierto", plan[0].Batch.ID)
}

// Cantidad cero o negativa se rechaza antes de mirar los lotes.
func TestPlanAllocation_CantidadInvalida(t *testing.T) {
	batches := []*entity.Batch{lote("b1", nil, 10, "2025-01-01 08:00:00")}

	_, err := PlanAllocation("prod-1", batches, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = PlanAllocation("prod-1", batches, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// Pedir exactamente el stock disponible agota todos los lotes sin error.
func TestPlanAllocation_ConsumoExacto(t *testing.T) {
	batches := []*entity.Batch{
		lote("b1", fecha("2025-01-10 00:00:00"), 4, "2025-01-01 08:00:00"),
		lote("b2", nil, 6, "2025-01-02 08:00:00"),
	}

	plan, err := PlanAllocation("prod-1", batches, 10)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, 4, plan[0].Quantity)
	assert.Equal(t, 6, plan[1].Quantity)
}
