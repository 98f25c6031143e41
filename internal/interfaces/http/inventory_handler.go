package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-ledger/internal/application/dto"
	"github.com/tu-usuario/pos-ledger/internal/application/inventory"
	"github.com/tu-usuario/pos-ledger/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del motor de inventario (protegido).
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ReceiveStock recepción de mercadería: crea un lote y apende PURCHASE.
func (h *InventoryHandler) ReceiveStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		t, err := entity.ParseTimestamp(in.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "expiry_date: formato esperado " + entity.TimestampLayout})
		}
		expiry = &t
	}
	batchID, err := h.svc.Receive(c.Context(), inventory.ReceiveInput{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
		ExpiryDate:  expiry,
		ReferenceID: in.ReferenceID,
		ActorID:     &userID,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"batch_id": batchID})
}

// DeductStock deducción manual siguiendo FEFO (merma, rotura, devolución a proveedor).
func (h *InventoryHandler) DeductStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.DeductStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.svc.Deduct(c.Context(), in.ProductID, in.Quantity, entity.MovementKind(in.Kind), in.ReferenceID, &userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "deducción registrada"})
}

// AdjustStock ajuste crudo con delta firmado.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.Adjust(c.Context(), in.ProductID, in.Delta, in.ReferenceID, &userID); err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste registrado"})
}

// ExpireDue barrido de lotes vencidos bajo demanda. AsOf vacío = ahora.
func (h *InventoryHandler) ExpireDue(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.ExpireDueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asOf := time.Now()
	if in.AsOf != "" {
		t, err := entity.ParseTimestamp(in.AsOf)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "as_of: formato esperado " + entity.TimestampLayout})
		}
		asOf = t
	}
	expired, err := h.svc.ExpireDueBatches(c.Context(), asOf, &userID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"expired_batches": expired})
}

// RepairStock recalcula la caché de stock del producto desde el ledger.
func (h *InventoryHandler) RepairStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	stock, err := h.svc.RepairStock(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"product_id": productID, "stock": stock})
}

// GetStock stock del producto: el valor cacheado y la suma autoritativa del ledger.
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	cached, err := h.svc.CurrentStock(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	ledger, err := h.svc.LedgerStock(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: productID, CachedStock: cached, LedgerStock: ledger})
}

// GetHistory movimientos del ledger del producto, más reciente primero.
func (h *InventoryHandler) GetHistory(c *fiber.Ctx) error {
	productID := c.Params("id")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	entries, err := h.svc.HistoryFor(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryDTO{
			ID:            e.ID,
			ProductID:     e.ProductID,
			BatchID:       e.BatchID,
			QuantityDelta: e.QuantityDelta,
			Kind:          string(e.Kind),
			ReferenceID:   e.ReferenceID,
			ActorID:       e.ActorID,
			CreatedAt:     entity.FormatTimestamp(e.CreatedAt),
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "entries": out})
}
