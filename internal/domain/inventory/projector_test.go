package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

func TestRecomputeStock_SumaFirmada(t *testing.T) {
	entries := []*entity.LedgerEntry{
		{QuantityDelta: 20, Kind: entity.MovementPurchase},
		{QuantityDelta: -5, Kind: entity.MovementSale},
		{QuantityDelta: -3, Kind: entity.MovementSale},
		{QuantityDelta: 2, Kind: entity.MovementReturn},
		{QuantityDelta: -4, Kind: entity.MovementExpire},
	}
	assert.Equal(t, 10, RecomputeStock(entries))
}

func TestRecomputeStock_SinMovimientos(t *testing.T) {
	assert.Equal(t, 0, RecomputeStock(nil))
	assert.Equal(t, 0, RecomputeStock([]*entity.LedgerEntry{}))
}

// El resultado puede quedar negativo si el ledger lo dice; la proyección no opina.
func TestRecomputeStock_PermiteNegativo(t *testing.T) {
	entries := []*entity.LedgerEntry{
		{QuantityDelta: 5, Kind: entity.MovementPurchase},
		{QuantityDelta: -8, Kind: entity.MovementAdjustment},
	}
	assert.Equal(t, -3, RecomputeStock(entries))
}
